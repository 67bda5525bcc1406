package sqldb

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/wansing/chronik/core"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // a second :memory: connection would be a separate database
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestInsertAndLoginUser(t *testing.T) {

	var userDB = NewUserDB(openTestDB(t))

	created, err := userDB.InsertUser("Anna", "Anna@Example.Com ", "pw123")
	require.NoError(t, err)
	require.Equal(t, "Anna", created.Name())
	require.Equal(t, "anna@example.com", created.Email()) // trimmed and lowercased

	u, err := userDB.LoginUser("anna@example.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, created.ID(), u.ID())
	require.Equal(t, "Anna", u.Name())

	// the stored credential is a bcrypt hash, not the password
	var hash string
	require.NoError(t, userDB.QueryRow("SELECT hash FROM usr WHERE mail = ?", "anna@example.com").Scan(&hash))
	require.NotEqual(t, "pw123", hash)
	require.Contains(t, hash, "$2a$")
}

func TestInsertUserDuplicateEmail(t *testing.T) {

	var userDB = NewUserDB(openTestDB(t))

	_, err := userDB.InsertUser("Anna", "anna@example.com", "pw123")
	require.NoError(t, err)

	_, err = userDB.InsertUser("Other Anna", "anna@example.com", "different")
	require.ErrorIs(t, err, core.ErrEmailExists)

	// normalization applies before the uniqueness check
	_, err = userDB.InsertUser("Shouting Anna", " ANNA@EXAMPLE.COM", "different")
	require.ErrorIs(t, err, core.ErrEmailExists)
}

// A wrong password and an unknown email must be indistinguishable,
// else login attempts could enumerate accounts.
func TestLoginUserNoMatch(t *testing.T) {

	var userDB = NewUserDB(openTestDB(t))

	_, err := userDB.InsertUser("Anna", "anna@example.com", "pw123")
	require.NoError(t, err)

	u, errWrongPass := userDB.LoginUser("anna@example.com", "nope")
	require.Nil(t, u)
	require.ErrorIs(t, errWrongPass, core.ErrAuth)

	u, errUnknown := userDB.LoginUser("nobody@example.com", "pw123")
	require.Nil(t, u)
	require.ErrorIs(t, errUnknown, core.ErrAuth)

	require.Equal(t, errWrongPass, errUnknown)
}

func TestGetUser(t *testing.T) {

	var userDB = NewUserDB(openTestDB(t))

	created, err := userDB.InsertUser("Anna", "anna@example.com", "pw123")
	require.NoError(t, err)

	u, err := userDB.GetUser(created.ID())
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", u.Email())

	_, err = userDB.GetUser(42)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = userDB.GetUserByEmail("nobody@example.com")
	require.ErrorIs(t, err, core.ErrNotFound)
}
