package backend

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

var editTmpl = tmpl(`<h1>Edit article</h1>
	<form method="post" enctype="multipart/form-data">
		<div class="form-group">
			<label>Title</label>
			<input type="text" class="form-control" name="title" value="{{ .Article.Title }}" required autofocus>
		</div>
		<div class="form-group">
			<label>Text (Markdown)</label>
			<textarea class="form-control" name="content" rows="12" required>{{ .Article.Content }}</textarea>
		</div>
		<div class="form-group">
			<label>Image (png, jpg, jpeg or gif)</label>
			{{ if .Article.Attachment }}
				<p><img style="max-width: 8rem;" src="/uploads/{{ .Article.Attachment }}" alt=""> choosing a new image replaces this one</p>
			{{ end }}
			<input type="file" class="form-control-file" name="image" accept="image/*">
		</div>
		<a class="btn btn-secondary" href="/dashboard">Cancel</a>
		<button type="submit" class="btn btn-primary" name="save">Save</button>
	</form>`)

type editData struct {
	*context
	Article core.DBArticle
}

// openForMutation loads the article and applies the ownership guard.
// It answers the request itself (flash plus redirect) and returns nil, nil
// if the article is gone or the acting user is not its author.
func openForMutation(ctx *context, params httprouter.Params, action core.Action) (core.DBArticle, error) {

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		ctx.Danger(errors.New("this article does not exist"))
		ctx.SeeOther("/dashboard")
		return nil, nil
	}

	a, err := ctx.db.GetArticle(id)
	if errors.Is(err, core.ErrNotFound) {
		ctx.Danger(errors.New("this article does not exist"))
		ctx.SeeOther("/dashboard")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := core.RequireOwner(ctx.User, a, action); err != nil {
		ctx.Danger(err) // ErrForbidden, distinguishable from the not-found notice above
		ctx.SeeOther("/dashboard")
		return nil, nil
	}

	return a, nil
}

func editArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	a, err := openForMutation(ctx, params, core.ActionEdit)
	if a == nil {
		return err
	}

	if req.Method == http.MethodPost {

		title := strings.TrimSpace(req.PostFormValue("title"))
		content := req.PostFormValue("content")

		if title == "" || strings.TrimSpace(content) == "" {
			ctx.Danger(errors.New("title and text are required"))
		} else {

			attachment, err := storeUpload(req, ctx, a.Attachment())
			if err != nil {
				return err
			}

			if err := ctx.db.UpdateArticle(a.ID(), title, content, attachment); err != nil {
				return err
			}

			ctx.Success("Your article has been updated")
			ctx.SeeOther("/article/%d", a.ID())
			return nil
		}
	}

	return editTmpl.Execute(w, &editData{
		context: ctx,
		Article: a,
	})
}
