package reference_test

import (
	"bytes"
	"errors"
	"testing"

	"voyage/internal/domains/booking/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerate_Shape(t *testing.T) {
	generator := reference.New()

	seen := map[string]bool{}

	for range 200 {
		ref, err := generator.Generate()
		require.NoError(t, err)

		assert.Len(t, ref, reference.Length)
		assert.True(t, reference.Valid(ref), ref)

		seen[ref] = true
	}

	assert.Greater(t, len(seen), 190)
}

func TestGenerate_Deterministic(t *testing.T) {
	source := bytes.NewReader([]byte{0, 1, 2, 25, 26, 35, 36, 61})

	ref, err := reference.NewFromReader(source).Generate()
	require.NoError(t, err)

	assert.Equal(t, "ABCZ09AZ", ref)
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	source := bytes.NewReader([]byte{
		255, 252, 0, 1, 2, 3, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 13,
	})

	ref, err := reference.NewFromReader(source).Generate()
	require.NoError(t, err)

	assert.Equal(t, "ABCDEFGH", ref)
}

func TestGenerate_SourceError(t *testing.T) {
	_, err := reference.NewFromReader(failingReader{}).Generate()

	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, reference.Valid("AB12CD34"))
	assert.False(t, reference.Valid("ab12cd34"))
	assert.False(t, reference.Valid("AB12CD3"))
	assert.False(t, reference.Valid("AB12CD34X"))
	assert.False(t, reference.Valid("AB-2CD34"))
}
