package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	t.Parallel()

	patterns := []string{"https://app.example.com", "*.movies.dev", "localhost:*"}

	assert.True(t, originAllowed(patterns, "https://app.example.com"))
	assert.True(t, originAllowed(patterns, "https://www.movies.dev"))
	assert.True(t, originAllowed(patterns, "http://localhost:3000"))
	assert.False(t, originAllowed(patterns, "https://evil.com"))
	assert.False(t, originAllowed(patterns, "https://example.com.evil.com"))
}

func TestExtractOriginHost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app.example.com", extractOriginHost("https://app.example.com"))
	assert.Equal(t, "localhost:3000", extractOriginHost("http://localhost:3000"))
	assert.Equal(t, "not a url", extractOriginHost("not a url"))
}
