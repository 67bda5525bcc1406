package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

var articlesTmpl = tmpl(`<h1>All articles</h1>

	{{ if not .Articles }}
		<p>Nothing has been published yet.</p>
	{{ end }}

	{{ range .Articles }}
		<div class="media mb-4">
			{{ if .Attachment }}
				<img class="mr-3" style="max-width: 8rem;" src="/uploads/{{ .Attachment }}" alt="">
			{{ end }}
			<div class="media-body">
				<h2 class="h5 mb-1"><a href="/article/{{ .ID }}">{{ .Title }}</a></h2>
				<small class="text-muted">by {{ .AuthorName }}, {{ Age .Created }}</small>
				<p class="mb-0">{{ Excerpt .Content }}</p>
			</div>
		</div>
	{{ end }}`)

type articlesData struct {
	*context
	Articles []core.DBArticle
}

func articles(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	all, err := ctx.db.GetAllArticles()
	if err != nil {
		return err
	}

	return articlesTmpl.Execute(w, &articlesData{
		context:  ctx,
		Articles: all,
	})
}
