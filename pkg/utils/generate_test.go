package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderCode_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		code := GenerateOrderCode()

		require.True(t, strings.HasPrefix(code, "AT-"), "code %q missing prefix", code)
		require.Len(t, code, len("AT-")+8)

		for _, c := range code[3:] {
			assert.Contains(t, orderCodeAlphabet, string(c),
				"code %q contains character outside the alphabet", code)
		}
	}
}

func TestGenerateOrderCode_CodesDiffer(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := GenerateOrderCode()
		require.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}

func TestGenerateOrderCode_ExcludesAmbiguousCharacters(t *testing.T) {
	t.Parallel()

	for _, forbidden := range []string{"I", "O", "0", "1"} {
		assert.NotContains(t, orderCodeAlphabet, forbidden)
	}
}

func TestParseUUID(t *testing.T) {
	t.Parallel()

	id := GenerateUUID()
	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
