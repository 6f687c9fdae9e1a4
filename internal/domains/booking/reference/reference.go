// Package reference allocates human-readable booking references.
//
// A reference is 8 characters drawn uniformly from A-Z and 0-9 using a
// cryptographic source. Uniqueness is not guaranteed here: callers check the
// ledger inside their transaction and ask for another one on collision.
package reference

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	Length   = 8
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// bytes at or above this bound would bias the modulo and are discarded.
	rejectionBound = 256 - 256%len(Alphabet)
)

type Generator interface {
	Generate() (string, error)
}

type generatorImpl struct {
	source io.Reader
}

func New() Generator {
	return &generatorImpl{source: rand.Reader}
}

// NewFromReader draws randomness from source instead of crypto/rand.
func NewFromReader(source io.Reader) Generator {
	return &generatorImpl{source: source}
}

func (g *generatorImpl) Generate() (string, error) {
	var builder strings.Builder

	builder.Grow(Length)

	buf := make([]byte, Length)

	for builder.Len() < Length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= rejectionBound {
				continue
			}

			builder.WriteByte(Alphabet[int(b)%len(Alphabet)])

			if builder.Len() == Length {
				break
			}
		}
	}

	return builder.String(), nil
}

// Valid reports whether ref has the shape of a generated reference.
func Valid(ref string) bool {
	if len(ref) != Length {
		return false
	}

	for _, r := range ref {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}

	return true
}
