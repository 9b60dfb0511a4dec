package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
)

const (
	// PasswordStoreDirEnv overrides where the password store lives. The pass
	// executable reads the same variable, so we hand it the resolved value.
	PasswordStoreDirEnv = "PASSWORD_STORE_DIR"

	// DefaultStoreDirName is the store's directory under the home directory
	DefaultStoreDirName = ".password-store"
)

// ErrNoHomeDir is returned when neither an override nor a home directory is available
var ErrNoHomeDir = errors.New("could not determine the home directory to default the password store to")

// StoreDirResolver works out the password store's root directory
type StoreDirResolver struct {
	getenv  func(string) string
	homeDir func() (string, error)
}

// NewStoreDirResolver returns a resolver reading the real environment
func NewStoreDirResolver() *StoreDirResolver {
	return &StoreDirResolver{
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	}
}

// Resolve returns PASSWORD_STORE_DIR if it is set, then the configured store
// dir (with a leading ~ expanded), then ~/.password-store. It never touches the process environment.
func (r *StoreDirResolver) Resolve(userConfig *UserConfig) (string, error) {
	if dir := r.getenv(PasswordStoreDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}

	if userConfig != nil && userConfig.StoreDir != "" {
		return r.expandHome(userConfig.StoreDir)
	}

	home, err := r.home()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultStoreDirName), nil
}

// expandHome resolves a leading ~ in a configured store dir against the home
// directory. ~user is left alone.
func (r *StoreDirResolver) expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return filepath.Clean(dir), nil
	}

	home, err := r.home()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}

func (r *StoreDirResolver) home() (string, error) {
	home, err := r.homeDir()
	if err != nil || home == "" {
		return "", ErrNoHomeDir
	}
	return home, nil
}

// StoreDirEnv returns the environment entry that points the password store
// executable at dir
func StoreDirEnv(dir string) string {
	return PasswordStoreDirEnv + "=" + dir
}
