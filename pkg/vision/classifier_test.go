package vision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReply_PlainJSON(t *testing.T) {
	result, err := ParseReply(`{"type":"shirt","color":"white","category":"everyday","description":"a plain white shirt"}`)

	assert.NoError(t, err)
	assert.Equal(t, "shirt", result.Type)
	assert.Equal(t, "white", result.Color)
	assert.Equal(t, "everyday", result.Category)
	assert.Equal(t, "a plain white shirt", result.Description)
}

func TestParseReply_StripsCodeFences(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"type\":\"skirt\",\"color\":\"green\",\"category\":\"evening\",\"description\":\"flowy\"}\n```"},
		{"bare fence", "```\n{\"type\":\"skirt\",\"color\":\"green\",\"category\":\"evening\",\"description\":\"flowy\"}\n```"},
		{"surrounding whitespace", "  \n```json\n{\"type\":\"skirt\",\"color\":\"green\",\"category\":\"evening\",\"description\":\"flowy\"}\n```\n  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseReply(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, "skirt", result.Type)
			assert.Equal(t, "evening", result.Category)
		})
	}
}

func TestParseReply_MissingFieldsSubstituted(t *testing.T) {
	result, err := ParseReply(`{"color":"blue"}`)

	assert.NoError(t, err)
	assert.Equal(t, Unrecognized, result.Type)
	assert.Equal(t, "blue", result.Color)
	assert.Equal(t, Unrecognized, result.Category)
	assert.Equal(t, Unrecognized, result.Description)
}

func TestParseReply_MalformedReply(t *testing.T) {
	raw := "I am sorry, I cannot tell what garment this is."

	result, err := ParseReply(raw)

	assert.Nil(t, result)
	assert.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	// The raw model text survives unmodified for operator diagnosis.
	assert.Equal(t, raw, parseErr.Raw)
}
