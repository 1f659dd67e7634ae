package catalog

import (
	"smj-server/internal/recordfile"
)

// User is an account record. Passwords are stored and compared in clear
// text, matching the system this catalog fronts.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

var userFields = []string{"username", "email", "password"}

// Users is the account table. Usernames are unique, case-sensitively.
// Accounts are never updated or deleted.
type Users struct {
	t *recordfile.Table
}

// OpenUsers opens the user table at path, creating it when absent.
func OpenUsers(path string) (*Users, error) {
	t, err := recordfile.Open(path, userFields)
	if err != nil {
		return nil, err
	}
	return &Users{t: t}, nil
}

// Exists reports whether an account with the given username is present.
func (u *Users) Exists(username string) (bool, error) {
	recs, err := u.t.LoadAll()
	if err != nil {
		return false, err
	}
	for _, r := range recs {
		if r["username"] == username {
			return true, nil
		}
	}
	return false, nil
}

// Create registers a new account. Returns ErrDuplicateUser when the
// username is taken.
func (u *Users) Create(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	rec := recordfile.Record{"username": username, "email": email, "password": password}
	return u.t.Insert(rec, func(recs []recordfile.Record) error {
		for _, r := range recs {
			if r["username"] == username {
				return ErrDuplicateUser
			}
		}
		return nil
	})
}

// Authenticate returns the account matching the exact (username, password)
// pair, or ErrInvalidCredentials.
func (u *Users) Authenticate(username, password string) (User, error) {
	recs, err := u.t.LoadAll()
	if err != nil {
		return User{}, err
	}
	for _, r := range recs {
		if r["username"] == username && r["password"] == password {
			return User{Username: r["username"], Email: r["email"]}, nil
		}
	}
	return User{}, ErrInvalidCredentials
}
