package services

import (
	"carwo/internal/domain"
	"carwo/internal/faults"
	"carwo/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = faults.New(faults.Unauthorized, "invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, faults.Wrap(faults.Transport, "bind session", err)
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentUser resolves the session cookie to a user; callers treat any
// error as "no live session".
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
