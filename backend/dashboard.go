package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

var dashboardTmpl = tmpl(`<h1>Your articles</h1>

	<p>
		<a class="btn btn-primary" href="/add_article">Write an article</a>
	</p>

	{{ if not .Articles }}
		<p>You have not published anything yet.</p>
	{{ end }}

	{{ if .Articles }}
		<table class="table table-sm">
			<thead>
				<tr>
					<th>Title</th>
					<th>Published</th>
					<th></th>
				</tr>
			</thead>
			<tbody>
				{{ range .Articles }}
					<tr>
						<td><a href="/article/{{ .ID }}">{{ .Title }}</a></td>
						<td>{{ FormatTs .Created }}</td>
						<td class="text-right">
							<a class="btn btn-secondary btn-sm" href="/edit_article/{{ .ID }}">Edit</a>
							<form method="post" action="/delete_article/{{ .ID }}" style="display: inline;">
								<button type="submit" class="btn btn-danger btn-sm">Delete</button>
							</form>
						</td>
					</tr>
				{{ end }}
			</tbody>
		</table>
	{{ end }}`)

type dashboardData struct {
	*context
	Articles []core.DBArticle
}

func dashboard(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	mine, err := ctx.db.GetArticlesBy(ctx.User.ID())
	if err != nil {
		return err
	}

	return dashboardTmpl.Execute(w, &dashboardData{
		context:  ctx,
		Articles: mine,
	})
}
