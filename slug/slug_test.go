package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2026", "hello-world-2026"},
		{"  Breaking   News  ", "breaking-news"},
		{"already-a-slug", "already-a-slug"},
		{"--Edge -- Case--", "edge-case"},
		{"भारत News", "news"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(tt.in), "input %q", tt.in)
	}
}

func TestGenerateOrRandom(t *testing.T) {
	assert.Equal(t, "sports", GenerateOrRandom("category", "Sports"))

	got := GenerateOrRandom("article", "खेल समाचार")
	assert.True(t, strings.HasPrefix(got, "article-"))
	assert.Len(t, got, len("article-")+8)
	assert.NotEqual(t, got, GenerateOrRandom("article", "खेल समाचार"))
}
