package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/yaml"
)

func TestNewAppConfigDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	actual := *conf.UserConfig
	expected := GetDefaultConfig()
	if actual != expected {
		t.Fatalf("Expected %+v but got %+v", expected, actual)
	}

	if _, err := os.Stat(conf.ConfigFilename()); !os.IsNotExist(err) {
		t.Fatalf("Expected no config file to be created, got %v", err)
	}
}

func TestNewAppConfigReadsConfigFile(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	content := []byte("passCommand: gopass --nosync\nstoreDir: /srv/store\nlanguage: de\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), content, 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if conf.UserConfig.PassCommand != "gopass --nosync" {
		t.Fatalf("Expected %s but got %s", "gopass --nosync", conf.UserConfig.PassCommand)
	}
	if conf.UserConfig.StoreDir != "/srv/store" {
		t.Fatalf("Expected %s but got %s", "/srv/store", conf.UserConfig.StoreDir)
	}
	if conf.UserConfig.Language != "de" {
		t.Fatalf("Expected %s but got %s", "de", conf.UserConfig.Language)
	}
	// untouched fields keep their defaults
	if conf.UserConfig.EntryExtension != ".gpg" {
		t.Fatalf("Expected %s but got %s", ".gpg", conf.UserConfig.EntryExtension)
	}
}

func TestNewAppConfigBlankValueFallsBackToDefault(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("passCommand: \"\"\n"), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if conf.UserConfig.PassCommand != "pass" {
		t.Fatalf("Expected %s but got %s", "pass", conf.UserConfig.PassCommand)
	}
}

func TestNewAppConfigInvalidConfigFile(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("passCommand: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if _, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false); err == nil {
		t.Fatalf("Expected an error for an invalid config file")
	}
}

func TestNewAppConfigDebugFromEnv(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("DEBUG", "TRUE")

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if !conf.Debug {
		t.Fatalf("Expected debug to be enabled by DEBUG=TRUE")
	}
}

func TestDefaultConfigRoundTripsThroughYaml(t *testing.T) {
	var buf bytes.Buffer
	if err := yaml.NewEncoder(&buf).Encode(GetDefaultConfig()); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	decoded := UserConfig{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if decoded != GetDefaultConfig() {
		t.Fatalf("Expected %+v but got %+v", GetDefaultConfig(), decoded)
	}
}

func TestNewAppConfigRejectsInvalidConfig(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("keyIdFile: keys/.gpg-id\n"), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if _, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false); err == nil {
		t.Fatalf("Expected an error for a keyIdFile holding a path")
	}
}
