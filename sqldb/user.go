package sqldb

import (
	"database/sql"
	"strings"

	"github.com/wansing/chronik/core"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt.DefaultCost verifies in the region of 100 milliseconds on current hardware
const bcryptCost = bcrypt.DefaultCost

func clean(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)
	return email
}

type user struct {
	id    int
	name  string
	email string
	hash  string // bcrypt, contains its own salt
}

func (u *user) ID() int {
	return u.id
}

func (u *user) Name() string {
	return u.name
}

func (u *user) Email() string {
	return u.email
}

type UserDB struct {
	*sql.DB
	get        *sql.Stmt
	getByEmail *sql.Stmt
	insert     *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			name varchar(100) NOT NULL,
			mail varchar(100) NOT NULL,
			hash varchar(100) NOT NULL,
			UNIQUE(mail)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.get = mustPrepare(db, "SELECT name, mail FROM usr WHERE id = ? LIMIT 1")
	userDB.getByEmail = mustPrepare(db, "SELECT id, name, mail, hash FROM usr WHERE mail = ? LIMIT 1")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (name, mail, hash) VALUES (?, ?, ?)")
	return userDB
}

func (db *UserDB) GetUser(id int) (core.DBUser, error) {
	var u = &user{
		id: id,
	}
	err := db.get.QueryRow(id).Scan(&u.name, &u.email)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) GetUserByEmail(email string) (core.DBUser, error) {
	var u = &user{}
	err := db.getByEmail.QueryRow(clean(email)).Scan(&u.id, &u.name, &u.email, &u.hash)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// InsertUser stores a new user with a bcrypt hash of the password.
// The password itself is never written anywhere.
func (db *UserDB) InsertUser(name, email, password string) (core.DBUser, error) {

	email = clean(email)

	// probe first for a friendly error, the unique index backs this up under races
	if _, err := db.GetUserByEmail(email); err == nil {
		return nil, core.ErrEmailExists
	} else if err != core.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	res, err := db.insert.Exec(name, email, string(hash))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &user{
		id:    int(id),
		name:  name,
		email: email,
		hash:  string(hash),
	}, nil
}

// LoginUser returns core.ErrAuth for an unknown email and for a wrong
// password alike, see core.UserDB.
func (db *UserDB) LoginUser(email, password string) (core.DBUser, error) {

	var u = &user{}

	err := db.getByEmail.QueryRow(clean(email)).Scan(&u.id, &u.name, &u.email, &u.hash)
	if err == sql.ErrNoRows {
		return nil, core.ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.hash), []byte(password)) != nil {
		return nil, core.ErrAuth // wrong password
	}

	return u, nil
}
