// Package backend serves the HTML surface of chronik.
package backend

import (
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

// we need the CoreDB in the handlers
type context struct {
	*core.Request
	db *core.CoreDB
}

func middleware(db *core.CoreDB, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: db.NewRequest(w, req),
			db:      db,
		}
		defer ctx.Cleanup()

		if requireLoggedIn && !ctx.LoggedIn() {
			ctx.SeeOther("/login")
			return
		}

		if err := f(w, req, ctx, params); err != nil {
			// probably no template has been executed, so execute error template
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

func NewRouter(db *core.CoreDB) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	router.GET("/", middleware(db, false, root))
	GETAndPOST("/login", middleware(db, false, login))
	GETAndPOST("/register", middleware(db, false, register))
	router.GET("/articles", middleware(db, false, articles))
	router.GET("/article/:id", middleware(db, false, article))
	router.Handler(http.MethodGet, "/uploads/*filepath", http.StripPrefix("/uploads", db.Uploads))

	// private
	router.GET("/dashboard", middleware(db, true, dashboard))
	GETAndPOST("/add_article", middleware(db, true, addArticle))
	GETAndPOST("/edit_article/:id", middleware(db, true, editArticle))
	router.POST("/delete_article/:id", middleware(db, true, deleteArticle))
	router.GET("/logout", middleware(db, true, logout))

	return router
}

func tmpl(text string) *template.Template {
	t := template.Must(baseTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var baseTmpl = template.Must(template.New("base").Funcs(
	template.FuncMap{
		"Age":      Age,
		"Excerpt":  excerpt,
		"FormatTs": FormatTs,
		"Body":     renderBody,
	},
).Parse(`
<!DOCTYPE html>
<html>
	<head>
		<link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/bootstrap@4.4.1/dist/css/bootstrap.min.css">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
		<title>chronik</title>

		<style>

			body {
				padding-bottom: 1rem;
			}

			h1 {
				font-size: 1.5rem !important;
				margin: 1rem 0 0.7rem !important;
			}

			article img {
				max-width: 100%;
			}

		</style>
	</head>
	<body>

		<nav class="navbar navbar-expand-md bg-light">
			<ul class="navbar-nav">
				<li class="nav-item">
					<a class="nav-link" href="/articles">Articles</a>
				</li>

				{{ if .LoggedIn }}

					<li class="nav-item">
						<a class="nav-link" href="/dashboard">{{ .User.Name }}</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="/add_article">Write</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="/logout">Logout</a>
					</li>

				{{ else }}

					<li class="nav-item">
						<a class="nav-link" href="/login">Login</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="/register">Register</a>
					</li>

				{{ end }}
			</ul>
		</nav>

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>
	</body>
</html>`))
