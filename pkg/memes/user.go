package memes

// User is a service account. Users are not memes: they are keyed by login
// alone and carry no opco scope or version token. Session holds the opaque
// credential the server issues on signin and is otherwise empty.
type User struct {
	Login    string
	Email    string
	Roles    []string
	Disabled bool
	Session  string

	key string
}

func DecodeUser(r Raw) (*User, error) {
	login, err := strField(r, KindUser, "login")
	if err != nil {
		return nil, err
	}
	email, err := optField(r, KindUser, "email")
	if err != nil {
		return nil, err
	}
	disabled, err := boolField(r, KindUser, "disabled")
	if err != nil {
		return nil, err
	}
	session, err := optField(r, KindUser, "session")
	if err != nil {
		return nil, err
	}
	items, err := listField(r, KindUser, "roles")
	if err != nil {
		return nil, err
	}
	u := &User{
		Login:    login,
		Email:    email,
		Disabled: disabled,
		Session:  session,
		key:      identityKey(KindUser, "", login),
	}
	for _, item := range items {
		role, ok := item.(string)
		if !ok {
			return nil, &DecodeError{Kind: KindUser, Field: "roles", Reason: "contains a non-string element"}
		}
		u.Roles = append(u.Roles, role)
	}
	return u, nil
}

func (u *User) Key() string { return u.key }

func (u *User) Record() Raw {
	r := Raw{
		"definition": string(KindUser),
		"login":      u.Login,
	}
	if u.Email != "" {
		r["email"] = u.Email
	}
	if len(u.Roles) > 0 {
		r["roles"] = append([]string(nil), u.Roles...)
	}
	if u.Disabled {
		r["disabled"] = true
	}
	if u.Session != "" {
		r["session"] = u.Session
	}
	return r
}
