package memetree

import (
	"fmt"

	"github.com/spf13/viper"
)

// FromEnv builds a client from MEMETREE_* environment variables:
// MEMETREE_URL (required), MEMETREE_LOGIN and MEMETREE_PASSWORD (optional;
// when a login is set the client signs in before returning).
func FromEnv(opts ...ClientOption) (*Client, error) {
	v := viper.New()
	v.SetEnvPrefix("memetree")
	v.AutomaticEnv()

	base := v.GetString("url")
	if base == "" {
		return nil, fmt.Errorf("memetree: MEMETREE_URL is not set")
	}
	c := New(base, opts...)
	if login := v.GetString("login"); login != "" {
		if _, err := c.Signin(login, v.GetString("password")); err != nil {
			return nil, err
		}
	}
	return c, nil
}
