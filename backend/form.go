package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wansing/chronik/upload"
)

// storeUpload takes the optional "image" file out of the multipart form and
// stores it, replacing old if there was one. It returns old if the form
// carries no upload. An upload of a disallowed type is flashed as a notice
// and dropped, the article proceeds with its old attachment.
//
// The file is written before the article row is committed. A crash in
// between leaves a stray file in the upload folder but never a row
// referencing a missing file.
func storeUpload(req *http.Request, ctx *context, old string) (string, error) {

	file, header, err := req.FormFile("image")
	if err != nil {
		return old, nil // no multipart form, or no file chosen
	}
	defer file.Close()

	if header.Filename == "" {
		return old, nil
	}

	var stored string
	if old == "" {
		stored, err = ctx.db.Uploads.Accept(header.Filename, file)
	} else {
		stored, err = ctx.db.Uploads.Replace(old, header.Filename, file)
	}

	if errors.Is(err, upload.ErrInvalidAttachment) {
		ctx.Danger(fmt.Errorf("%s is %w, the article is saved without it", header.Filename, err))
		return old, nil
	}
	if err != nil {
		return old, err
	}

	return stored, nil
}
