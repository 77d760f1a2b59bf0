// Package latexcalc evaluates formulas typed in a LaTeX-like notation.
//
// The syntax is what a math input widget tends to produce: "\frac{1}{2}",
// "e^{i*pi}", "2x", "\left(x+1\right)^2", "cos pi". A formula goes through four
// stages. Normalize rewrites the surface syntax into plain infix, inserting the
// multiplications and zeros that the notation leaves implicit. The lexer splits
// that into tokens, Compile turns the tokens into a postfix program with the
// shunting-yard algorithm, and Exec runs the program on a small stack machine.
//
// Results are real or complex. A formula may mention one free variable, e.g. x,
// which is bound by the Var option. Any name that is neither a function nor a
// constant refers to that variable.
//
// Exponentiation is left-associative: "2^3^2" is (2^3)^2.
package latexcalc
