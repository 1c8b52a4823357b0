package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("PALETTE_TEST_INT", "42")
	t.Setenv("PALETTE_TEST_BAD_INT", "forty-two")
	t.Setenv("PALETTE_TEST_FLOAT", "2.5")
	t.Setenv("PALETTE_TEST_BOOL", "false")
	t.Setenv("PALETTE_TEST_SLICE", "a@x.com,b@x.com")

	assert.Equal(t, "fallback", getEnv("PALETTE_TEST_UNSET", "fallback"))
	assert.Equal(t, 42, getEnvInt("PALETTE_TEST_INT", 1))
	assert.Equal(t, 1, getEnvInt("PALETTE_TEST_BAD_INT", 1))
	assert.Equal(t, 2.5, getEnvFloat("PALETTE_TEST_FLOAT", 1))
	assert.False(t, getEnvBool("PALETTE_TEST_BOOL", true))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, getEnvSlice("PALETTE_TEST_SLICE", ""))
	assert.Nil(t, getEnvSlice("PALETTE_TEST_UNSET", ""))
}
