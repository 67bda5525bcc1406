package backend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronik/core"
)

var registerTmpl = tmpl(`<h1>Register</h1>
	<form method="post" style="max-width: 20rem; margin: auto;">
		<div class="form-group">
			<label>Name</label>
			<input type="text" class="form-control" name="name" value="{{ .Name }}" required autofocus>
		</div>
		<div class="form-group">
			<label>E-Mail</label>
			<input type="email" class="form-control" name="email" value="{{ .Email }}" required>
		</div>
		<div class="form-group">
			<label>Password</label>
			<input type="password" class="form-control" name="password" required>
		</div>
		<div class="form-group">
			<button type="submit" class="btn btn-primary" name="register">Register</button>
		</div>
	</form>`)

type registerData struct {
	*context
	Name  string
	Email string
}

func register(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if ctx.LoggedIn() {
		ctx.SeeOther("/dashboard")
		return nil
	}

	var data = &registerData{
		context: ctx,
	}

	if req.Method == http.MethodPost {

		data.Name = strings.TrimSpace(req.PostFormValue("name"))
		data.Email = strings.TrimSpace(req.PostFormValue("email"))
		password := req.PostFormValue("password")

		switch {
		case data.Name == "" || data.Email == "" || password == "":
			ctx.Danger(errors.New("name, email and password are required"))
		default:
			_, err := ctx.db.InsertUser(data.Name, data.Email, password)
			switch {
			case err == nil:
				ctx.Success("Welcome %s, you can log in now", data.Name)
				ctx.SeeOther("/login")
				return nil
			case errors.Is(err, core.ErrEmailExists):
				ctx.Danger(err)
				// keep POST data
			default:
				return err
			}
		}
	}

	return registerTmpl.Execute(w, data)
}
