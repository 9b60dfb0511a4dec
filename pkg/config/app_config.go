package config

import (
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/imdario/mergo"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for docker-credential-truth.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"docker-credential-truth"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `docker-credential-truth --config`. The file is optional: nothing is written to it, and any field you leave out keeps its default.
type UserConfig struct {
	// PassCommand is the password store executable we shell out to. It is looked up on your PATH, and may carry leading arguments, e.g. "gopass --nosync"
	PassCommand string `yaml:"passCommand,omitempty"`

	// StoreDir is where the password store lives when PASSWORD_STORE_DIR isn't set, e.g. ~/.pass or /srv/store. Leave it empty to use ~/.password-store
	StoreDir string `yaml:"storeDir,omitempty"`

	// EntryExtension is the suffix the password store puts on every entry file. pass uses ".gpg"
	EntryExtension string `yaml:"entryExtension,omitempty"`

	// KeyIDFile is the file the password store keeps its key ids in, at the top of the store. It is never treated as a server
	KeyIDFile string `yaml:"keyIdFile,omitempty"`

	// Language is the language log messages are written in. "auto" picks it up from your environment
	Language string `yaml:"language,omitempty"`
}

// GetDefaultConfig returns the application default configuration
func GetDefaultConfig() UserConfig {
	return UserConfig{
		PassCommand:    "pass",
		StoreDir:       "",
		EntryExtension: ".gpg",
		KeyIDFile:      ".gpg-id",
		Language:       "auto",
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir := ConfigDir(name)

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

// ConfigDir returns the directory config.yml (and development.log) live in.
// CONFIG_DIR takes precedence over the XDG config home.
func ConfigDir(projectName string) string {
	envConfigDir := os.Getenv("CONFIG_DIR")
	if envConfigDir != "" {
		return envConfigDir
	}

	configDirs := xdg.New("christophe-duc", projectName)
	return configDirs.ConfigHome()
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	content, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	// an explicitly blank value in config.yml falls back to the default
	if err := mergo.Merge(base, GetDefaultConfig()); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	return base, nil
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
