// Package fuzz holds the go-fuzz harness for latexcalc. Build it with
//
//	go-fuzz-build github.com/zephyrtronium/latexcalc/fuzz
//
// The native fuzz tests in the latexcalc package cover the same ground with
// go test -fuzz.
package fuzz
