package booking

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		ref, err := NewReference()
		require.NoError(t, err)

		assert.Len(t, ref, referenceLength)
		for _, r := range ref {
			assert.True(t, strings.ContainsRune(referenceAlphabet, r),
				"unexpected character %q in %q", r, ref)
		}

		seen[ref] = struct{}{}
	}

	// 36^8 codes; 1000 draws colliding would point at a broken generator
	assert.Equal(t, 1000, len(seen))
}

func TestNewReferenceFromMapsBytesToAlphabet(t *testing.T) {
	r := bytes.NewReader([]byte{0, 1, 2, 25, 26, 35, 36, 251})

	ref, err := newReferenceFrom(r)
	require.NoError(t, err)
	assert.Equal(t, "ABCZ09A9", ref)
}

func TestNewReferenceFromSkipsBytesAboveCutoff(t *testing.T) {
	// 252..255 would map unevenly onto the 36-char alphabet and must be
	// discarded instead of folded in.
	r := bytes.NewReader([]byte{
		252, 253, 254, 255, 0, 1, 2, 3,
		4, 5, 6, 7, 8, 9, 10, 11,
	})

	ref, err := newReferenceFrom(r)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGH", ref)
}

func TestNewReferenceFromShortReader(t *testing.T) {
	_, err := newReferenceFrom(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
