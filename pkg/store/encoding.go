package store

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/christophe-duc/docker-credential-truth/pkg/commands"
)

// serverURLEncoding is RFC 4648 base64url without padding. It never produces
// '/' or '.', so an encoded URL is always a single, non-hidden path segment.
// Strict decoding rejects names with non-zero padding bits, which keeps the
// mapping one-to-one in both directions.
var serverURLEncoding = base64.RawURLEncoding.Strict()

// EncodeServerURL turns a server URL into the directory name its credentials
// are stored under
func EncodeServerURL(serverURL string) string {
	return serverURLEncoding.EncodeToString([]byte(serverURL))
}

// DecodeServerURL reverses EncodeServerURL
func DecodeServerURL(encoded string) (string, error) {
	decoded, err := serverURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", commands.NewError(commands.EncodingError, "'%s' is not an encoded server URL: %v", encoded, err)
	}

	if !utf8.Valid(decoded) {
		return "", commands.NewError(commands.EncodingError, "'%s' does not decode to valid UTF-8", encoded)
	}

	return string(decoded), nil
}
