package latexcalc

import "strings"

// rewrites is the sequence of rules that Normalize applies. Each rule assumes
// the ones before it have run: e.g. mulparens expects braces to already be
// parentheses, and padsigns expects negative literals to already be grouped.
var rewrites = []func(string) string{
	fracs,
	brackets,
	callgroups,
	mulparens,
	mulclose,
	muldigits,
	negliterals,
	padsigns,
}

// Normalize rewrites a formula in LaTeX-like notation into plain infix. It
// expands fractions, turns braces into parentheses, makes implicit
// multiplication explicit, and makes unary signs binary by adding a zero
// operand, so that "-\frac{1}{2}x" becomes "0-(1)/(2)*x". Fractions may nest,
// and a run of signs like "--" counts as the one sign it amounts to.
// Normalizing the result again gives the same string.
func Normalize(src string) string {
	for _, rw := range rewrites {
		src = rw(src)
	}
	return src
}

// fracs expands \frac{A}{B} to (A)/(B). Neither A nor B may contain a closing
// brace, so nested fractions expand from the inside out, one level per pass.
func fracs(s string) string {
	for {
		t := fracpass(s)
		if t == s {
			return s
		}
		s = t
	}
}

// fracpass expands each fraction whose arguments hold no other fraction.
func fracpass(s string) string {
	const frac = `\frac{`
	if !strings.Contains(s, frac) {
		return s
	}
	var b strings.Builder
	for {
		k := strings.Index(s, frac)
		if k < 0 {
			break
		}
		num, den, n := fracargs(s[k+len(frac):])
		if n < 0 || strings.Contains(num, frac) || strings.Contains(den, frac) {
			b.WriteString(s[:k+1])
			s = s[k+1:]
			continue
		}
		b.WriteString(s[:k])
		b.WriteByte('(')
		b.WriteString(num)
		b.WriteString(")/(")
		b.WriteString(den)
		b.WriteByte(')')
		s = s[k+len(frac)+n:]
	}
	b.WriteString(s)
	return b.String()
}

// fracargs splits the text following \frac{ into its numerator and
// denominator. n is the number of bytes the two arguments span, including
// braces, or -1 if t does not hold two non-empty arguments.
func fracargs(t string) (num, den string, n int) {
	i := strings.IndexByte(t, '}')
	if i <= 0 || i+1 >= len(t) || t[i+1] != '{' {
		return "", "", -1
	}
	j := strings.IndexByte(t[i+2:], '}')
	if j <= 0 {
		return "", "", -1
	}
	return t[:i], t[i+2 : i+2+j], i + 2 + j + 1
}

var bracketReplacer = strings.NewReplacer(
	`\left(`, "(",
	"{", "(",
	`\right)`, ")",
	"}", ")",
)

// brackets turns every kind of group into parentheses.
func brackets(s string) string {
	return bracketReplacer.Replace(s)
}

// callgroups parenthesizes calls like sin(x) that sit directly against an
// operand, so that Asin(x)B reads as A(sin(x))B. The argument must not contain
// parentheses.
func callgroups(s string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			continue
		}
		n := funcprefix(s[i:])
		if n == 0 {
			continue
		}
		end := callend(s, i+n)
		if end < 0 {
			continue
		}
		if operandBefore(s, i) || operandAfter(s, end) {
			b.WriteString(s[last:i])
			b.WriteByte('(')
			b.WriteString(s[i:end])
			b.WriteByte(')')
			last = end
		}
		i = end - 1
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// callend returns the index just past a parenthesized argument list starting
// at s[k], or -1 if there is none or it contains nested parentheses.
func callend(s string, k int) int {
	if k >= len(s) || s[k] != '(' {
		return -1
	}
	for i := k + 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			return -1
		case ')':
			if i == k+1 {
				return -1
			}
			return i + 1
		}
	}
	return -1
}

func operandBefore(s string, k int) bool {
	p := prevNonSpace(s, k)
	if p < 0 {
		return false
	}
	c := s[p]
	return isWord(c) || c == '.' || c == ')'
}

func operandAfter(s string, k int) bool {
	n := nextNonSpace(s, k)
	if n >= len(s) {
		return false
	}
	c := s[n]
	return isWord(c) || c == '.' || c == '('
}

// mulparens inserts * before an opening parenthesis that follows an operand,
// as in 2(x+1) or (a)(b). Function calls are left alone, and so are
// parenthesized signed literals like (-3) and (+i).
func mulparens(s string) string {
	var b strings.Builder
	last := 0
	for k := 0; k < len(s); k++ {
		if s[k] != '(' {
			continue
		}
		p := prevNonSpace(s, k)
		if p < 0 || isOperator(s[p]) || s[p] == '(' || funcsuffix(s, p+1) || signedLiteral(s[k+1:]) {
			continue
		}
		b.WriteString(s[last:k])
		b.WriteByte('*')
		last = k
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// signedLiteral reports whether t starts with a sign followed by a number or a
// lone i. A zero before the sign, as padsigns leaves it, is allowed.
func signedLiteral(t string) bool {
	if len(t) > 1 && t[0] == '0' && isSign(t[1]) {
		t = t[1:]
	}
	if len(t) < 2 || !isSign(t[0]) {
		return false
	}
	switch c := t[1]; {
	case isDigit(c), c == '.':
		return true
	case c == 'i':
		return len(t) == 2 || !isLetter(t[2])
	}
	return false
}

// mulclose inserts * between a closing parenthesis and a following word.
func mulclose(s string) string {
	var b strings.Builder
	last := 0
	for k := 1; k < len(s); k++ {
		if s[k-1] != ')' || !isWord(s[k]) {
			continue
		}
		b.WriteString(s[last:k])
		b.WriteByte('*')
		last = k
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// muldigits inserts * between a digit and a following letter, and between i
// and a following digit: 2x becomes 2*x and i2 becomes i*2.
func muldigits(s string) string {
	var b strings.Builder
	last := 0
	for k := 1; k < len(s); k++ {
		l, r := s[k-1], s[k]
		if !(isDigit(l) && isLetter(r)) && !(l == 'i' && isDigit(r)) {
			continue
		}
		b.WriteString(s[last:k])
		b.WriteByte('*')
		last = k
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// negliterals parenthesizes a negative number or -i that directly follows an
// arithmetic operator, so 2*-3 becomes 2*(-3). Exponent signs are left to the
// ^- operator.
func negliterals(s string) string {
	var b strings.Builder
	last := 0
	for k := 0; k < len(s); k++ {
		if s[k] != '-' {
			continue
		}
		p := prevNonSpace(s, k)
		if p < 0 || strings.IndexByte("+-*/", s[p]) < 0 {
			continue
		}
		e := k + 1
		for e < len(s) && (isDigit(s[e]) || s[e] == '.' || s[e] == 'i') {
			e++
		}
		if e == k+1 || e < len(s) && (isLetter(s[e]) || s[e] == '_') {
			continue
		}
		b.WriteString(s[last:k])
		b.WriteByte('(')
		b.WriteString(s[k:e])
		b.WriteByte(')')
		last = e
		k = e - 1
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// padsigns writes a 0 before each unary + or -, i.e. a sign at the start of
// the formula or after anything other than an operand or ^, so that every
// sign is a binary operator. After ^, the sign is part of the ^+ or ^-
// operator. Runs of signs are first reduced to one sign.
func padsigns(s string) string {
	s = signruns(s)
	var b strings.Builder
	last := 0
	for k := 0; k < len(s); k++ {
		if !isSign(s[k]) {
			continue
		}
		if p := prevNonSpace(s, k); p >= 0 {
			c := s[p]
			if isWord(c) || c == '^' || c == ')' || c == '.' {
				continue
			}
		}
		n := nextNonSpace(s, k+1)
		if n >= len(s) {
			continue
		}
		if c := s[n]; !isWord(c) && c != '.' && c != '(' {
			continue
		}
		b.WriteString(s[last:k])
		b.WriteByte('0')
		last = k
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// signruns replaces each run of signs, possibly separated by spaces, with the
// single sign it amounts to: -- is +, and +- is -.
func signruns(s string) string {
	var b strings.Builder
	last := 0
	for k := 0; k < len(s); k++ {
		if !isSign(s[k]) {
			continue
		}
		neg := s[k] == '-'
		e, n := k+1, 1
		for j := nextNonSpace(s, e); j < len(s) && isSign(s[j]); j = nextNonSpace(s, e) {
			neg = neg != (s[j] == '-')
			e = j + 1
			n++
		}
		if n == 1 {
			continue
		}
		b.WriteString(s[last:k])
		if neg {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		last = e
		k = e - 1
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// prevNonSpace returns the index of the last non-space byte before s[k], or -1.
func prevNonSpace(s string, k int) int {
	k--
	for k >= 0 && isSpace(s[k]) {
		k--
	}
	return k
}

// nextNonSpace returns the index of the first non-space byte at or after s[k],
// or len(s).
func nextNonSpace(s string, k int) int {
	for k < len(s) && isSpace(s[k]) {
		k++
	}
	return k
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWord(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isOperator(c byte) bool {
	return strings.IndexByte(Operators, c) >= 0
}
