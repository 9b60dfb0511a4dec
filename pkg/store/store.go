package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/christophe-duc/docker-credential-truth/pkg/commands"
	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/docker/docker-credential-helpers/credentials"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Store reads the directory layout the password store keeps under its root:
// one directory per encoded server URL, holding one `{username}{extension}` file.
// Writing entries is left to the password store executable.
type Store struct {
	Log       *logrus.Entry
	Fs        afero.Fs
	Root      string
	Extension string
	KeyIDFile string
}

// NewStore returns a Store rooted at root on fs
func NewStore(log *logrus.Entry, fs afero.Fs, root string, userConfig *config.UserConfig) *Store {
	return &Store{
		Log:       log,
		Fs:        fs,
		Root:      root,
		Extension: userConfig.EntryExtension,
		KeyIDFile: userConfig.KeyIDFile,
	}
}

// EntryName is the name the password store knows the credentials for
// serverURL and username by
func (s *Store) EntryName(serverURL string, username string) string {
	return EncodeServerURL(serverURL) + "/" + username
}

// ServerDir is the directory holding the credentials for serverURL
func (s *Store) ServerDir(serverURL string) string {
	return filepath.Join(s.Root, EncodeServerURL(serverURL))
}

// FindUsername returns the username stored for serverURL. It fails with a
// NotFound error if there is no such server or it holds no entries.
func (s *Store) FindUsername(serverURL string) (string, error) {
	dir := s.ServerDir(serverURL)
	s.Log.Debugf("Looking in directory '%s'", dir)

	username, found, err := s.firstUsername(dir)
	if err != nil {
		return "", err
	}
	if !found {
		return "", commands.WrapErrorWithCode(commands.NotFound, credentials.NewErrCredentialsNotFound())
	}

	s.Log.Debugf("Found username '%s'", username)
	return username, nil
}

// List maps every stored server URL to its username. Servers without any
// entries are left out. A store that doesn't exist yet is empty.
func (s *Store) List() (map[string]string, error) {
	result := map[string]string{}

	infos, err := afero.ReadDir(s.Fs, s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			s.Log.Debugf("No password store at '%s'", s.Root)
			return result, nil
		}
		return nil, commands.WrapErrorWithCode(commands.FilesystemError, err)
	}

	for _, info := range s.servers(infos) {
		if !info.IsDir() {
			s.Log.Tracef("Skipping %s, it isn't a directory", info.Name())
			continue
		}

		serverURL, err := DecodeServerURL(info.Name())
		if err != nil {
			return nil, err
		}
		s.Log.Debugf("Found server: '%s'.", serverURL)

		username, found, err := s.firstUsername(filepath.Join(s.Root, info.Name()))
		if err != nil {
			return nil, err
		}
		if !found {
			s.Log.Debug("Found no usernames for server.")
			continue
		}

		s.Log.Debugf("   Found username: '%s'.", username)
		result[serverURL] = username
	}

	return result, nil
}

// Erase removes everything stored for serverURL. It is an error for there to
// be nothing stored.
func (s *Store) Erase(serverURL string) error {
	dir := s.ServerDir(serverURL)
	s.Log.Debugf("Erasing directory '%s'", dir)

	if _, err := s.Fs.Stat(dir); err != nil {
		return commands.WrapErrorWithCode(commands.FilesystemError, err)
	}

	if err := s.Fs.RemoveAll(dir); err != nil {
		return commands.WrapErrorWithCode(commands.FilesystemError, err)
	}

	return nil
}

// firstUsername returns the username of the first entry in dir, in name order
func (s *Store) firstUsername(dir string) (string, bool, error) {
	infos, err := afero.ReadDir(s.Fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, commands.WrapErrorWithCode(commands.FilesystemError, err)
	}

	entries := s.usernames(infos)
	if len(entries) == 0 {
		return "", false, nil
	}

	return strings.TrimSuffix(entries[0].Name(), s.Extension), true, nil
}

// servers drops the key id file and any other dotfile at the top of the
// store. An encoded server URL never starts with a dot.
func (s *Store) servers(infos []os.FileInfo) []os.FileInfo {
	return lo.Filter(infos, func(info os.FileInfo, _ int) bool {
		if strings.HasPrefix(info.Name(), ".") {
			s.Log.Tracef("Skipping %s", info.Name())
			return false
		}
		return true
	})
}

// usernames drops only the key id file inside a server directory, so a
// username starting with a dot is still found
func (s *Store) usernames(infos []os.FileInfo) []os.FileInfo {
	return lo.Filter(infos, func(info os.FileInfo, _ int) bool {
		if info.Name() == s.KeyIDFile {
			s.Log.Tracef("Skipping %s", info.Name())
			return false
		}
		return true
	})
}
