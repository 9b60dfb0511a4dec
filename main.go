package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/christophe-duc/docker-credential-truth/pkg/app"
	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/christophe-duc/docker-credential-truth/pkg/i18n"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/sirupsen/logrus"
)

const projectName = "docker-credential-truth"

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	// logLevel is the level used when LOG_LEVEL isn't set, e.g.
	// -ldflags "-X main.logLevel=warn". Left empty, everything down to debug is logged.
	logLevel string

	configFlag    = false
	debuggingFlag = false
	keyID         string
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	appConfig, err := config.NewAppConfig(projectName, version, commit, date, buildSource, false)
	if err != nil {
		log.Fatal(err.Error())
	}

	quietLog := logrus.New()
	quietLog.Out = io.Discard
	// the help text falls back to english quietly; NewApp warns about an unsupported language
	tr, _ := i18n.NewTranslationSetFromConfig(logrus.NewEntry(quietLog), appConfig.UserConfig.Language)

	flaggy.SetName(projectName)
	flaggy.SetDescription("A docker credential helper storing credentials in pass")
	flaggy.DefaultParser.AdditionalHelpAppend = "\n" + tr.AfterHelp

	flaggy.Bool(&configFlag, "c", "config", tr.ConfigFlagDescription)
	flaggy.Bool(&debuggingFlag, "d", "debug", tr.DebugFlagDescription)
	flaggy.SetVersion(info)

	initCmd := flaggy.NewSubcommand(app.InitSubcommand)
	initCmd.Description = tr.InitDescription
	initCmd.AddPositionalValue(&keyID, "key-id", 1, true, tr.InitKeyIDDescription)

	storeCmd := flaggy.NewSubcommand(app.StoreSubcommand)
	storeCmd.Description = tr.StoreDescription

	getCmd := flaggy.NewSubcommand(app.GetSubcommand)
	getCmd.Description = tr.GetDescription

	listCmd := flaggy.NewSubcommand(app.ListSubcommand)
	listCmd.Description = tr.ListDescription

	eraseCmd := flaggy.NewSubcommand(app.EraseSubcommand)
	eraseCmd.Description = tr.EraseDescription

	versionCmd := flaggy.NewSubcommand("version")
	versionCmd.Description = tr.VersionDescription

	subcommands := []*flaggy.Subcommand{initCmd, storeCmd, getCmd, listCmd, eraseCmd, versionCmd}
	for _, subcommand := range subcommands {
		flaggy.AttachSubcommand(subcommand, 1)
	}

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	if versionCmd.Used {
		fmt.Println(version)
		os.Exit(0)
	}

	subcommand := ""
	for _, candidate := range subcommands {
		if candidate.Used {
			subcommand = candidate.Name
		}
	}
	if subcommand == "" {
		flaggy.ShowHelpAndExit(tr.MissingSubcommand)
	}

	appConfig.Debug = appConfig.Debug || debuggingFlag

	app, err := app.NewApp(appConfig, logLevel)
	if err == nil {
		args := []string{}
		if initCmd.Used {
			args = append(args, keyID)
		}
		err = app.Run(subcommand, args...)
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			app.Log.Error(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		app.Log.Debug(newErr.ErrorStack())
		app.Log.Error(fmt.Sprintf("%s %s", app.Tr.ErrorOccurred, err.Error()))
		os.Exit(1)
	}
}
