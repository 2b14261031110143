package primality

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sieve returns composite[i] == false for every prime i <= limit
func sieve(limit int) []bool {
	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return composite
}

func TestIsPrimeKnownValues(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{n: 2, want: true},
		{n: 1, want: false},
		{n: 4, want: false},
		{n: 17, want: true},
		{n: 91, want: false},
		{n: 3, want: true},
		{n: 25, want: false},
		{n: 49, want: false},
		{n: 7919, want: true},
		{n: 2147483647, want: true},
		{n: 2147483649, want: false},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.n, 10), func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.n))
		})
	}
}

func TestIsPrimeBelowTwo(t *testing.T) {
	for _, n := range []int64{1, 0, -1, -2, -7, -17, math.MinInt64} {
		assert.False(t, IsPrime(n), "n=%d", n)
	}
}

func TestIsPrimeAgreesWithSieve(t *testing.T) {
	const limit = 10000
	composite := sieve(limit)

	for n := 0; n <= limit; n++ {
		require.Equal(t, !composite[n], IsPrime(int64(n)), "n=%d", n)
	}
}

func TestIsPrimeIsIdempotent(t *testing.T) {
	for n := int64(0); n < 200; n++ {
		first := IsPrime(n)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, IsPrime(n))
		}
	}
}

func TestIsPrimeLargeInputDoesNotOverflow(t *testing.T) {
	assert.True(t, IsPrime(1000000007))
	// 2^63-1 = 7^2 * 73 * 127 * 337 * 92737 * 649657
	assert.False(t, IsPrime(math.MaxInt64))
	assert.False(t, IsPrime(math.MaxInt64-1))
}

func TestParse(t *testing.T) {
	n, err := Parse(" 42\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = Parse("-5")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), n)
}

func TestParseRejectsMalformedText(t *testing.T) {
	for _, input := range []string{"", "three", "3.0", "0x11", "1e3", "99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotInteger)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, input, parseErr.Input)

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))
		})
	}
}

func TestCheck(t *testing.T) {
	prime, err := Check("3")
	require.NoError(t, err)
	assert.True(t, prime)

	prime, err = Check("91")
	require.NoError(t, err)
	assert.False(t, prime)

	_, err = Check("six")
	assert.ErrorIs(t, err, ErrNotInteger)
}
