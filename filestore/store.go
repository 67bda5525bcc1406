// Package filestore keeps article attachments as flat files in one folder.
package filestore

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/wansing/chronik/upload"
)

// implements upload.Store
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil { // 755 is required if the webserver runs as a different user
		return nil, err
	}
	return &Store{
		Dir: dir,
	}, nil
}

func (s *Store) path(filename string) string {
	return filepath.Join(s.Dir, filename)
}

// Accept overwrites an existing file of the same name. Attachments have
// last-write-wins semantics like the article rows which reference them.
func (s *Store) Accept(filename string, src io.Reader) (string, error) {

	filename, err := upload.CheckFilename(filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(s.path(filename)) // creates or truncates the named file, umask 0666
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}

func (s *Store) Replace(old string, filename string, src io.Reader) (string, error) {

	stored, err := s.Accept(filename, src)
	if err != nil {
		return "", err
	}

	if old != "" && old != stored {
		if err := s.Remove(old); err != nil {
			return stored, err
		}
	}

	return stored, nil
}

func (s *Store) Remove(filename string) error {
	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return err
	}
	err = os.Remove(s.path(filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // removing twice must succeed
	}
	return err
}

func (s *Store) Has(filename string) (bool, error) {
	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(s.path(filename)); err == nil {
		return true, nil
	} else if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}

// ServeHTTP serves a stored file. The request path is the filename.
func (s *Store) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	filename, err := upload.CleanFilename(strings.TrimPrefix(req.URL.Path, "/"))
	if err != nil {
		http.NotFound(w, req)
		return
	}
	http.ServeFile(w, req, s.path(filename))
}
