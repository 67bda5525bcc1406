package backend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

var articleTmpl = tmpl(`<article>
	<h1>{{ .Article.Title }}</h1>

	<p class="text-muted">by {{ .Article.AuthorName }}, {{ .FormatDateTime .Article.Created }}</p>

	{{ if .Article.Attachment }}
		<p><img src="/uploads/{{ .Article.Attachment }}" alt=""></p>
	{{ end }}

	{{ Body .Article.Content }}

	{{ if .Mine }}
		<p class="mt-3">
			<a class="btn btn-secondary btn-sm" href="/edit_article/{{ .Article.ID }}">Edit</a>
		</p>
	{{ end }}
</article>`)

type articleData struct {
	*context
	Article core.DBArticle
}

// Mine is a display hint only, mutations are authorized in their handlers.
func (data *articleData) Mine() bool {
	return data.LoggedIn() && data.User.ID() == data.Article.AuthorID()
}

func article(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		http.NotFound(w, req)
		return nil
	}

	a, err := ctx.db.GetArticle(id)
	if errors.Is(err, core.ErrNotFound) {
		http.NotFound(w, req)
		return nil
	}
	if err != nil {
		return err
	}

	return articleTmpl.Execute(w, &articleData{
		context: ctx,
		Article: a,
	})
}
