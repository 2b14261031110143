// Package primality decides whether integers are prime using trial division.
package primality

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotInteger is matched by every ParseError
var ErrNotInteger = errors.New("input is not an integer")

// ParseError is returned when text cannot be read as a base-10 integer
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, ErrNotInteger)
}

// Is reports ErrNotInteger as a match so callers need not type-assert
func (e *ParseError) Is(target error) bool {
	return target == ErrNotInteger
}

// Unwrap returns the underlying strconv error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsPrime reports whether n is prime. Values below 2 are never prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}

	// d <= n/d is d*d <= n without overflow
	for d := int64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Parse reads text as a signed base-10 integer, ignoring surrounding whitespace
func Parse(text string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	return n, nil
}

// Check parses text and reports whether the number is prime
func Check(text string) (bool, error) {
	n, err := Parse(text)
	if err != nil {
		return false, err
	}
	return IsPrime(n), nil
}
