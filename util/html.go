package util

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Excerpt extracts the text of an HTML fragment, cut to roughly maxRunes.
func Excerpt(input io.Reader, maxRunes int) string {

	tokenizer := html.NewTokenizerFragment(input, "body")
	tokenizer.SetMaxBuf(4096) // roughly the maximum number of bytes tokenized

	var collected []rune

	for len(collected) < maxRunes {

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}

		if tt == html.TextToken {
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if len(collected) > 0 {
				collected = append(collected, ' ')
			}
			collected = append(collected, []rune(text)...)
		}
	}

	if len(collected) > maxRunes {
		collected = append(collected[:maxRunes], '…')
	}

	return string(collected)
}
