package config

import (
	"fmt"
	"strings"

	"github.com/mgutz/str"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	argv := str.ToArgv(config.PassCommand)
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return fmt.Errorf("passCommand must name an executable, e.g. 'pass'")
	}

	if !strings.HasPrefix(config.EntryExtension, ".") {
		return fmt.Errorf("Unrecognized entryExtension '%s'. It must start with a dot, e.g. '.gpg'", config.EntryExtension)
	}

	// both are names inside the store root, never paths
	for name, value := range map[string]string{
		"entryExtension": config.EntryExtension,
		"keyIdFile":      config.KeyIDFile,
	} {
		if strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("Unrecognized %s '%s'. It must not contain a path separator", name, value)
		}
	}

	return nil
}
