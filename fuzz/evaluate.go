//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"errors"

	"github.com/zephyrtronium/latexcalc"

	// go-fuzz support
	_ "github.com/dvyukov/go-fuzz/go-fuzz-dep"
)

// Fuzz checks that Evaluate never panics and that normalizing is idempotent.
// Inputs that evaluate without error are given priority.
func Fuzz(data []byte) int {
	src := string(data)
	n := latexcalc.Normalize(src)
	if latexcalc.Normalize(n) != n {
		panic("normalizing " + src + " is not idempotent")
	}
	x := 0.5
	_, err := latexcalc.EvaluateAt(src, x)
	if err == nil {
		return 1
	}
	var ce *latexcalc.CompileError
	if errors.As(err, &ce) {
		panic(err)
	}
	return 0
}
