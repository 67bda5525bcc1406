package core

import (
	"errors"
)

// ErrAuth is returned for an unknown email as well as for a wrong password,
// so login attempts can't be used to probe which addresses are registered.
var ErrAuth = errors.New("wrong email or password")

var ErrEmailExists = errors.New("this email address is already registered")

type DBUser interface {
	ID() int
	Name() string
	Email() string
}

type UserDB interface {
	GetUser(id int) (DBUser, error)
	GetUserByEmail(email string) (DBUser, error)
	InsertUser(name, email, password string) (DBUser, error) // must store a hash, never the password
	LoginUser(email, password string) (DBUser, error)
}
