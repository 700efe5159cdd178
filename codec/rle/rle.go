// SPDX-License-Identifier: EPL-2.0

// Package rle implements a byte-oriented run-length codec.
//
// Every run of identical bytes is written as one or more (count, value)
// token pairs. A single token holds at most MaxRun repetitions, so longer
// runs are split into several tokens carrying the same value. Runs of one
// byte still cost a full token, which means input without repeats doubles
// in size. That is a property of the scheme, not a defect.
package rle

import "fmt"

// MaxRun is the longest run a single token can express.
const MaxRun = 255

// Token is one (count, value) pair. Count is always >= 1 for tokens
// produced by Tokens and Encode.
type Token struct {
	Count uint8
	Value uint8
}

// Tokens scans src and returns the run tokens describing it.
func Tokens(src []byte) []Token {
	var tokens []Token

	for i := 0; i < len(src); {
		v := src[i]
		run := 1
		for i+run < len(src) && src[i+run] == v {
			run++
		}
		i += run

		for run > 0 {
			n := min(run, MaxRun)
			tokens = append(tokens, Token{Count: uint8(n), Value: v})
			run -= n
		}
	}

	return tokens
}

// Encode returns the token stream for src, flattened as count then value
// for each token. Decode(Encode(x)) returns x for every x.
func Encode(src []byte) []byte {
	tokens := Tokens(src)
	if len(tokens) == 0 {
		return []byte{}
	}

	out := make([]byte, 0, len(tokens)*2)
	for _, t := range tokens {
		out = append(out, t.Count, t.Value)
	}

	return out
}

// Decode expands a token stream produced by Encode.
// An odd-length input fails with ErrMalformedStream and yields no output.
// Tokens with a zero count expand to nothing.
func Decode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedStream, len(src))
	}

	size := 0
	for i := 0; i < len(src); i += 2 {
		size += int(src[i])
	}

	out := make([]byte, 0, size)
	for i := 0; i < len(src); i += 2 {
		count, value := int(src[i]), src[i+1]
		for range count {
			out = append(out, value)
		}
	}

	return out, nil
}
