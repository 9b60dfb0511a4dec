// Package protocol reads and writes the payloads of the docker credential
// helper protocol. The field names are fixed by docker and are case sensitive.
package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/christophe-duc/docker-credential-truth/pkg/commands"
	"github.com/christophe-duc/docker-credential-truth/pkg/utils"
	"github.com/docker/docker-credential-helpers/credentials"
	"github.com/spkg/bom"
	"github.com/tidwall/gjson"
)

// Wire names of the credential fields
const (
	ServerURLField = "ServerURL"
	UsernameField  = "Username"
	SecretField    = "Secret"
)

// storeRequestFields are the fields `store` requires, in the order they are read
var storeRequestFields = []string{ServerURLField, UsernameField, SecretField}

// getResponse is what `get` prints
type getResponse struct {
	Username string `json:"Username"`
	Secret   string `json:"Secret"`
}

// DecodeCredentials reads the single JSON object `store` is given on stdin.
// Every field must be present and be a string; ServerURL and Username must
// not be empty.
func DecodeCredentials(r io.Reader) (*credentials.Credentials, error) {
	content, err := io.ReadAll(bom.NewReader(r))
	if err != nil {
		return nil, commands.WrapErrorWithCode(commands.MalformedInput, err)
	}

	if !gjson.ValidBytes(content) || !gjson.ParseBytes(content).IsObject() {
		return nil, commands.NewError(commands.MalformedInput, "credentials must be a single JSON object")
	}

	results := gjson.GetManyBytes(content, storeRequestFields...)
	for i, field := range storeRequestFields {
		if !results[i].Exists() {
			return nil, commands.NewError(commands.MalformedInput, "credentials are missing the %s field", field)
		}
		if results[i].Type != gjson.String {
			return nil, commands.NewError(commands.MalformedInput, "the %s field must be a string", field)
		}
	}

	creds := &credentials.Credentials{
		ServerURL: results[0].String(),
		Username:  results[1].String(),
		Secret:    results[2].String(),
	}

	if strings.TrimSpace(creds.ServerURL) == "" {
		return nil, commands.WrapErrorWithCode(commands.MalformedInput, credentials.NewErrCredentialsMissingServerURL())
	}

	// the username becomes a file name in the store, and has to be read back from it
	if creds.Username == "" {
		return nil, commands.WrapErrorWithCode(commands.MalformedInput, credentials.NewErrCredentialsMissingUsername())
	}
	if strings.ContainsAny(creds.Username, `/\`) {
		return nil, commands.NewError(commands.MalformedInput, "the %s field must not contain a path separator", UsernameField)
	}

	return creds, nil
}

// ReadServerURL reads the one line `get` and `erase` are given on stdin,
// without its line terminator or any other trailing whitespace. Anything after
// the first line is left unread.
func ReadServerURL(r io.Reader) (string, error) {
	line, err := bufio.NewReader(bom.NewReader(r)).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", commands.WrapErrorWithCode(commands.MalformedInput, err)
	}

	serverURL := utils.TrimTrailingWhitespace(line)
	if serverURL == "" {
		return "", commands.WrapErrorWithCode(commands.MalformedInput, credentials.NewErrCredentialsMissingServerURL())
	}
	if !utf8.ValidString(serverURL) {
		return "", commands.NewError(commands.MalformedInput, "the server URL is not valid UTF-8")
	}

	return serverURL, nil
}

// EncodeGetResponse returns the JSON `get` prints
func EncodeGetResponse(username string, secret string) (string, error) {
	return encode(getResponse{
		Username: username,
		Secret:   secret,
	})
}

// EncodeListResponse returns the JSON `list` prints: an object mapping every
// server URL to its username, with keys in sorted order
func EncodeListResponse(serverUsernames map[string]string) (string, error) {
	if serverUsernames == nil {
		serverUsernames = map[string]string{}
	}
	return encode(serverUsernames)
}

// encode marshals value without escaping HTML characters, so usernames like
// <token> come out as they went in
func encode(value interface{}) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return "", commands.WrapError(err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
