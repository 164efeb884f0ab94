package auth

import (
	"context"
	"fmt"

	"github.com/2beens/workoutsheet/pkg"
)

type User struct {
	Username        string `toml:"username"`
	DisplayName     string `toml:"display_name"`
	PasswordHash    string `toml:"password_hash"`
	CredentialsFile string `toml:"credentials_file"`
}

// CredentialStore resolves users by name.
type CredentialStore interface {
	User(ctx context.Context, username string) (*User, error)
}

var _ CredentialStore = (*StaticCredentialStore)(nil)

// StaticCredentialStore holds the users loaded from config.
type StaticCredentialStore struct {
	users map[string]User
}

func NewStaticCredentialStore(users []User) (*StaticCredentialStore, error) {
	store := &StaticCredentialStore{
		users: make(map[string]User, len(users)),
	}
	for _, u := range users {
		if u.Username == "" {
			return nil, fmt.Errorf("user with empty username")
		}
		if err := pkg.ValidatePasswordHash(u.PasswordHash); err != nil {
			return nil, fmt.Errorf("user %s: %w", u.Username, err)
		}
		if _, ok := store.users[u.Username]; ok {
			return nil, fmt.Errorf("user %s: defined twice", u.Username)
		}
		if u.DisplayName == "" {
			u.DisplayName = u.Username
		}
		store.users[u.Username] = u
	}
	return store, nil
}

func (s *StaticCredentialStore) User(_ context.Context, username string) (*User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
