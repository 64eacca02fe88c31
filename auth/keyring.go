// Package auth keeps API credentials in the system keyring.
package auth

import (
	"errors"

	"github.com/vscope-cli/vscope/constant"
	"github.com/zalando/go-keyring"
)

const clientIDUser = "youku-client-id"

// ErrNotFound is returned when no credential is stored.
var ErrNotFound = keyring.ErrNotFound

// SetClientID stores the Youku client id.
func SetClientID(id string) error {
	if id == "" {
		return errors.New("client id is empty")
	}
	return keyring.Set(constant.App, clientIDUser, id)
}

// ClientID returns the stored Youku client id.
func ClientID() (string, error) {
	return keyring.Get(constant.App, clientIDUser)
}

// DeleteClientID removes the stored Youku client id.
func DeleteClientID() error {
	return keyring.Delete(constant.App, clientIDUser)
}
