package booking

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	referenceLength   = 8
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Largest multiple of len(referenceAlphabet) below 256. Bytes at or
	// above it are rejected so every character stays equally likely.
	referenceByteMax = 256 - 256%len(referenceAlphabet)
)

// NewReference returns a short human-facing booking code. Uniqueness is
// not guaranteed here; the caller checks the store and the unique
// constraint on booking_reference is the final arbiter.
func NewReference() (string, error) {
	return newReferenceFrom(rand.Reader)
}

func newReferenceFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, referenceLength)
	buf := make([]byte, referenceLength)

	for len(out) < referenceLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("booking.NewReference: %w", err)
		}
		for _, b := range buf {
			if int(b) >= referenceByteMax {
				continue
			}
			out = append(out, referenceAlphabet[int(b)%len(referenceAlphabet)])
			if len(out) == referenceLength {
				break
			}
		}
	}

	return string(out), nil
}
