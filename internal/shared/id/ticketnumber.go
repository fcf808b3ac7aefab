// Package id generates human-readable ticket numbers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	digits = "0123456789"

	// SuffixLength is the number of random digits appended to the month prefix.
	SuffixLength = 4
)

// TicketNumber generates a number in the form "T<YYYYMM>-<NNNN>".
// The random suffix makes collisions within a month rare but possible;
// the tickets table carries a unique index and callers regenerate on
// a duplicate-key error.
func TicketNumber(now time.Time) (string, error) {
	suffix, err := randomDigits(SuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("T%s-%s", now.Format("200601"), suffix), nil
}

func randomDigits(length int) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(digits)))
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		result[i] = digits[num.Int64()]
	}
	return string(result), nil
}
