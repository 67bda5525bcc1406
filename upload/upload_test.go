package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFilename(t *testing.T) {

	for input, want := range map[string]string{
		"photo.png":            "photo.png",
		" photo.png ":          "photo.png",
		"../../etc/passwd.png": "passwd.png",
		`..\..\evil.png`:       ".._.._evil.png", // backslashes are not path separators here, just unsafe
		"my photo.png":         "my_photo.png",
		"über.png":             "_ber.png",
	} {
		got, err := CleanFilename(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", " ", "..", ".", "/", "___"} {
		_, err := CleanFilename(input)
		assert.Error(t, err, input)
	}
}

func TestCheckFilename(t *testing.T) {

	// the extension check is case-insensitive
	for input, want := range map[string]string{
		"photo.png":  "photo.png",
		"photo.JPG":  "photo.JPG",
		"photo.JpEg": "photo.JpEg",
		"anim.gif":   "anim.gif",
	} {
		got, err := CheckFilename(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"shell.exe", "noextension", "archive.tar.gz", "png", ".png", "", "script.php.txt"} {
		_, err := CheckFilename(input)
		assert.ErrorIs(t, err, ErrInvalidAttachment, input)
	}
}
