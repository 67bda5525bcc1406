package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {

	assert.Equal(t,
		"Hello World",
		Excerpt(strings.NewReader("<h1>Hello</h1><p><em>World</em></p>"), 100),
	)

	assert.Equal(t,
		"12345…",
		Excerpt(strings.NewReader("<p>1234567890</p>"), 5),
	)

	assert.Equal(t,
		"",
		Excerpt(strings.NewReader(""), 100),
	)
}
