package auth

import (
	"encoding/base64"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
)

// Authenticator supplies the Authorization header sent with every request.
type Authenticator interface {
	AuthorizationHeader() string
}

// BasicAuth authenticates with a workspace key pair. The header is encoded
// once and reused; credentials are static for the life of the client.
type BasicAuth struct {
	keyID  string
	header string
}

// NewBasicAuth creates a Basic authenticator with keyID as the username and
// keySecret as the password.
func NewBasicAuth(keyID, keySecret string) *BasicAuth {
	encoded := base64.StdEncoding.EncodeToString([]byte(keyID + ":" + keySecret))

	return &BasicAuth{
		keyID:  keyID,
		header: "Basic " + encoded,
	}
}

// AuthorizationHeader returns the precomputed header value.
func (b *BasicAuth) AuthorizationHeader() string {
	return b.header
}

// KeyID returns the workspace key identifier.
func (b *BasicAuth) KeyID() string {
	return b.keyID
}

// String masks the secret so the authenticator is safe to print.
func (b *BasicAuth) String() string {
	return "Basic " + b.keyID + ":" + constants.MaskedSecret
}

// GoString masks the secret for %#v.
func (b *BasicAuth) GoString() string {
	return b.String()
}
