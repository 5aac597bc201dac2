package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocType(t *testing.T) {
	got, err := ParseDocType("  Food_Hygiene ")
	require.NoError(t, err)
	assert.Equal(t, "food_hygiene", got)

	_, err = ParseDocType("passport")
	assert.ErrorIs(t, err, ErrUnknownDocType)
}

func TestObjectPath(t *testing.T) {
	path, err := ObjectPath("user-1", "insurance", ".PDF")
	require.NoError(t, err)
	assert.Equal(t, "user-1/insurance.pdf", path)
}

func TestObjectPathRejectsTraversal(t *testing.T) {
	for _, tc := range []struct{ name, ext string }{
		{"../../etc", "pdf"},
		{"insurance", "p/df"},
		{"insurance", "tar.gz"},
		{"", "pdf"},
		{"insurance", ""},
	} {
		_, err := ObjectPath("user-1", tc.name, tc.ext)
		assert.ErrorIs(t, err, ErrBadFileName, "name=%q ext=%q", tc.name, tc.ext)
	}
}
