package backend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

var addTmpl = tmpl(`<h1>Write an article</h1>
	<form method="post" enctype="multipart/form-data">
		<div class="form-group">
			<label>Title</label>
			<input type="text" class="form-control" name="title" value="{{ .Title }}" required autofocus>
		</div>
		<div class="form-group">
			<label>Text (Markdown)</label>
			<textarea class="form-control" name="content" rows="12" required>{{ .Content }}</textarea>
		</div>
		<div class="form-group">
			<label>Image (png, jpg, jpeg or gif)</label>
			<input type="file" class="form-control-file" name="image" accept="image/*">
		</div>
		<button type="submit" class="btn btn-primary" name="publish">Publish</button>
	</form>`)

type addData struct {
	*context
	Title   string
	Content string
}

func addArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var data = &addData{
		context: ctx,
	}

	if req.Method == http.MethodPost {

		data.Title = strings.TrimSpace(req.PostFormValue("title"))
		data.Content = req.PostFormValue("content")

		if data.Title == "" || strings.TrimSpace(data.Content) == "" {
			ctx.Danger(errors.New("title and text are required"))
		} else {

			attachment, err := storeUpload(req, ctx, "")
			if err != nil {
				return err
			}

			id, err := ctx.db.InsertArticle(ctx.User.ID(), data.Title, data.Content, attachment)
			if err != nil {
				return err
			}

			ctx.Success("Your article has been published")
			ctx.SeeOther("/article/%d", id)
			return nil
		}
	}

	return addTmpl.Execute(w, data)
}
