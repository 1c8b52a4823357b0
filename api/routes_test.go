package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanOrigin(t *testing.T) {
	tests := map[string]string{
		"https://Palettes.example.com":      "palettes.example.com",
		"http://localhost:5173":             "localhost:5173",
		"https://palettes.example.com/app/": "palettes.example.com",
		"palettes.example.com/path":         "palettes.example.com",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanOrigin(in), in)
	}
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://palettes.example.com", " http://studio.example.com "}

	assert.True(t, isAllowedOrigin("https://palettes.example.com", allowed, false))
	assert.True(t, isAllowedOrigin("http://studio.example.com/editor", allowed, false))
	assert.False(t, isAllowedOrigin("https://palettes.example.com.evil.io", allowed, false))
	assert.False(t, isAllowedOrigin("http://localhost:3000", allowed, false))
	assert.True(t, isAllowedOrigin("http://localhost:3000", allowed, true))
	assert.True(t, isAllowedOrigin("http://127.0.0.1:8080", nil, true))
}

func TestConfigIsAdminEmail(t *testing.T) {
	cfg := Config{AdminEmails: []string{" Owner@Example.com", ""}}

	assert.True(t, cfg.IsAdminEmail("owner@example.com"))
	assert.False(t, cfg.IsAdminEmail("someone@example.com"))
	assert.False(t, cfg.IsAdminEmail(""))
}

func TestValidatorFieldMessages(t *testing.T) {
	type sample struct {
		Name   string   `json:"name" validate:"required,min=3"`
		Colors []string `json:"colors" validate:"max=1"`
		Steps  int      `json:"steps" validate:"omitempty,max=10"`
		Kind   string   `json:"kind" validate:"omitempty,oneof=full tints"`
	}

	err := NewValidator().Validate(sample{Name: "ab", Colors: []string{"a", "b"}, Steps: 11, Kind: "x"})
	var verr *ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, map[string]string{
			"name":   "must be at least 3 characters",
			"colors": "must contain at most 1 entries",
			"steps":  "must not exceed 10",
			"kind":   "must be one of: full, tints",
		}, verr.Fields)
		assert.Contains(t, err.Error(), "colors must contain at most 1 entries; kind")
	}

	assert.NoError(t, NewValidator().Validate(sample{Name: "abc"}))
}
