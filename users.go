package memetree

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/memetree/memetree.go/pkg/memes"
)

// UsersService manages service accounts. Users are not memes: they carry
// no opco scope and no version token, so their updates are last-write-wins.
type UsersService struct {
	c *Client
}

func (s *UsersService) All() ([]*memes.User, error) {
	r := s.c.newRequest("users.all", http.MethodGet, "users")
	return listOf(r, memes.KindUser, memes.DecodeUser)
}

func (s *UsersService) Get(login string) (*memes.User, error) {
	r := s.c.newRequest("users.get", http.MethodGet, "users", login)
	return single(r, memes.KindUser, memes.DecodeUser)
}

func (s *UsersService) Create(login, email, password string, roles []string) (*memes.User, error) {
	r := s.c.newRequest("users.create", http.MethodPost, "users")
	r.set("login", login).
		set("password", password).
		optional("email", email).
		optional("roles", strings.Join(roles, ","))
	return single(r, memes.KindUser, memes.DecodeUser)
}

// Update submits email, roles and the disabled flag; u is never mutated.
func (s *UsersService) Update(u *memes.User) (*memes.User, error) {
	r := s.c.newRequest("users.update", http.MethodPut, "users", u.Login)
	r.set("email", u.Email).
		set("roles", strings.Join(u.Roles, ",")).
		set("disabled", strconv.FormatBool(u.Disabled))
	return single(r, memes.KindUser, memes.DecodeUser)
}

func (s *UsersService) Delete(u *memes.User) error {
	r := s.c.newRequest("users.delete", http.MethodDelete, "users", u.Login)
	return r.void()
}

// Disable locks the account out without deleting it.
func (s *UsersService) Disable(login string) error {
	r := s.c.newRequest("users.disable", http.MethodPost, "users", login, "disable")
	return r.void()
}

func (s *UsersService) Enable(login string) error {
	r := s.c.newRequest("users.enable", http.MethodPost, "users", login, "enable")
	return r.void()
}
