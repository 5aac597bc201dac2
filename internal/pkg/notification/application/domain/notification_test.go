package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContentLimits(t *testing.T) {
	assert.NoError(t, ValidateContent("title", "body"))
	assert.NoError(t, ValidateContent(strings.Repeat("a", MaxTitleLength), strings.Repeat("b", MaxBodyLength)))

	assert.ErrorIs(t, ValidateContent("", "body"), ErrEmptyTitle)
	assert.ErrorIs(t, ValidateContent("title", ""), ErrEmptyBody)
	assert.ErrorIs(t, ValidateContent(strings.Repeat("a", MaxTitleLength+1), "body"), ErrTitleTooLong)
	assert.ErrorIs(t, ValidateContent("title", strings.Repeat("b", MaxBodyLength+1)), ErrBodyTooLong)
}

func TestValidateContentCountsRunes(t *testing.T) {
	// "é" is two bytes; at the limit in characters it must still pass.
	assert.NoError(t, ValidateContent(strings.Repeat("é", MaxTitleLength), strings.Repeat("日", MaxBodyLength)))

	assert.ErrorIs(t, ValidateContent(strings.Repeat("é", MaxTitleLength+1), "body"), ErrTitleTooLong)
	assert.ErrorIs(t, ValidateContent("title", strings.Repeat("日", MaxBodyLength+1)), ErrBodyTooLong)
}

func TestParsePlatform(t *testing.T) {
	for _, valid := range []string{"android", "ios"} {
		p, err := ParsePlatform(valid)
		assert.NoError(t, err)
		assert.Equal(t, Platform(valid), p)
	}

	_, err := ParsePlatform("web")
	assert.ErrorIs(t, err, ErrInvalidPlatform)
}
