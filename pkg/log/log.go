package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/christophe-duc/docker-credential-truth/pkg/utils"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a new logger. defaultLevel is the level baked in at build
// time; LOG_LEVEL overrides it at runtime.
func NewLogger(config *config.AppConfig, defaultLevel string) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug {
		log = newDevelopmentLogger(config, defaultLevel)
	} else {
		log = newProductionLogger(os.Stderr, defaultLevel)
	}

	return log.WithFields(logrus.Fields{
		"version": config.Version,
		"commit":  config.Commit,
	})
}

func getLogLevel(defaultLevel string) logrus.Level {
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		return level
	}
	if level, err := logrus.ParseLevel(defaultLevel); err == nil {
		return level
	}
	return logrus.DebugLevel
}

// highly recommended: tail -f development.log | humanlog
// https://github.com/aybabtme/humanlog
func newDevelopmentLogger(config *config.AppConfig, defaultLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel(defaultLevel))
	log.Formatter = &logrus.JSONFormatter{}
	if err := os.MkdirAll(config.ConfigDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "unable to create config directory for the log file")
		os.Exit(1)
	}
	file, err := os.OpenFile(filepath.Join(config.ConfigDir, "development.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to log to file")
		os.Exit(1)
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger(out io.Writer, defaultLevel string) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.SetLevel(getLogLevel(defaultLevel))
	log.Formatter = &LevelFormatter{}
	return log
}

// LevelFormatter renders entries as "<level>: <message>", colouring the level
// when writing to a terminal. Fields are left out unless ShowFields is set.
type LevelFormatter struct {
	ShowFields bool
}

var levelColors = map[logrus.Level]string{
	logrus.PanicLevel: "red",
	logrus.FatalLevel: "red",
	logrus.ErrorLevel: "red",
	logrus.WarnLevel:  "yellow",
	logrus.InfoLevel:  "green",
	logrus.DebugLevel: "blue",
	logrus.TraceLevel: "cyan",
}

// Format implements logrus.Formatter
func (f *LevelFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	level := utils.ColoredString(strings.ToLower(entry.Level.String())+":", utils.GetColorAttribute(levelColors[entry.Level]))
	buf.WriteString(level)
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)

	if f.ShowFields && len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for key := range entry.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&buf, " %s=%v", utils.ColoredString(key, color.Faint), entry.Data[key])
		}
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
