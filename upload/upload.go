// Package upload defines the attachment storage contract and filename hygiene.
package upload

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidAttachment marks an upload which is not an accepted image file.
// Callers usually proceed without an attachment instead of failing.
var ErrInvalidAttachment = errors.New("not an accepted image file")

// attachments are images only
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Store interface {
	// Accept validates and stores an uploaded file and returns the sanitized filename.
	Accept(filename string, src io.Reader) (string, error)
	// Replace accepts the new upload, then deletes the old file. A missing
	// old file is not an error. If the upload is invalid, nothing is deleted.
	Replace(old string, filename string, src io.Reader) (string, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(filename string) error
	Has(filename string) (bool, error)
	ServeHTTP(w http.ResponseWriter, req *http.Request) // serves stored files by sanitized name
}

// CleanFilename strips any directory part from filename and replaces
// characters which are unsafe in a flat storage folder.
func CleanFilename(filename string) (string, error) {
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)
	filename = unsafeChars.ReplaceAllString(filename, "_")
	if strings.Trim(filename, "._-") == "" {
		return "", errors.New("filename is empty")
	}
	return filename, nil
}

// CheckFilename sanitizes filename and checks its extension against the
// allow-list. It returns the name under which the file will be stored.
func CheckFilename(filename string) (string, error) {
	filename, err := CleanFilename(filename)
	if err != nil {
		return "", ErrInvalidAttachment
	}
	var ext = strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] || strings.EqualFold(filename, ext) { // ".png" is a dotfile, not an image
		return "", ErrInvalidAttachment
	}
	return filename, nil
}
