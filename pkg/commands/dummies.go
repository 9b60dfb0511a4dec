package commands

import (
	"io"

	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyOSCommand creates a new dummy OSCommand for testing
func NewDummyOSCommand() *OSCommand {
	return NewOSCommand(NewDummyLog(), NewDummyAppConfig())
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	userConfig.Language = "en"
	appConfig := &config.AppConfig{
		Name:        "docker-credential-truth",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
	return appConfig
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyPassCommand creates a new dummy PassCommand for testing. It runs
// executable directly, without looking it up on the PATH.
func NewDummyPassCommand(osCommand *OSCommand, executable string, storeDir string) *PassCommand {
	return &PassCommand{
		Log:        NewDummyLog(),
		OSCommand:  osCommand,
		Executable: executable,
		StoreDir:   storeDir,
	}
}
