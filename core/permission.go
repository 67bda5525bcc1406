package core

import (
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("you are not the author of this article")

type Action int

const (
	ActionEdit Action = iota + 1
	ActionDelete
)

func (a Action) Valid() bool {
	return a == ActionEdit || a == ActionDelete
}

// RequireOwner decides whether user may apply action to article.
// It must be called with the article row loaded for the current request,
// its result is never carried over from an earlier request.
func RequireOwner(user DBUser, article DBArticle, action Action) error {
	if !action.Valid() {
		return errors.New("invalid action")
	}
	if user == nil {
		return ErrUnauthorized
	}
	if article.AuthorID() != user.ID() {
		return ErrForbidden
	}
	return nil
}
