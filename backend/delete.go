package backend

import (
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

func deleteArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	a, err := openForMutation(ctx, params, core.ActionDelete)
	if a == nil {
		return err
	}

	// the row goes first, so a crash in between leaves a stray file
	// but never a row referencing a missing file
	if err := ctx.db.DeleteArticle(a.ID()); err != nil {
		return err
	}

	if a.Attachment() != "" {
		if err := ctx.db.Uploads.Remove(a.Attachment()); err != nil {
			log.Printf("error removing attachment %s of article %d: %v", a.Attachment(), a.ID(), err)
		}
	}

	ctx.Success("Article %q has been deleted", a.Title())
	ctx.SeeOther("/dashboard")
	return nil
}
