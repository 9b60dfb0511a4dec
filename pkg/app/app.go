package app

import (
	"fmt"
	"io"
	"os"

	"github.com/christophe-duc/docker-credential-truth/pkg/commands"
	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/christophe-duc/docker-credential-truth/pkg/i18n"
	"github.com/christophe-duc/docker-credential-truth/pkg/log"
	"github.com/christophe-duc/docker-credential-truth/pkg/protocol"
	"github.com/christophe-duc/docker-credential-truth/pkg/store"
	"github.com/christophe-duc/docker-credential-truth/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Subcommands understood by Run
const (
	InitSubcommand  = "init"
	StoreSubcommand = "store"
	GetSubcommand   = "get"
	ListSubcommand  = "list"
	EraseSubcommand = "erase"
)

// App struct
type App struct {
	Config    *config.AppConfig
	Log       *logrus.Entry
	OSCommand *commands.OSCommand
	Tr        *i18n.TranslationSet
	Fs        afero.Fs
	Stdin     io.Reader
	Stdout    io.Writer

	storeDirResolver *config.StoreDirResolver
}

// NewApp bootstrap a new application
func NewApp(appConfig *config.AppConfig, defaultLogLevel string) (*App, error) {
	app := &App{
		Config:           appConfig,
		Fs:               afero.NewOsFs(),
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		storeDirResolver: config.NewStoreDirResolver(),
	}
	var err error
	app.Log = log.NewLogger(appConfig, defaultLogLevel)
	// an unsupported language still yields the english set
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, appConfig.UserConfig.Language)
	if err != nil {
		app.Log.Warn(err.Error())
	}
	app.OSCommand = commands.NewOSCommand(app.Log, appConfig)

	return app, nil
}

// Run runs one subcommand. Only init takes an argument, the key id.
func (app *App) Run(subcommand string, args ...string) error {
	switch subcommand {
	case InitSubcommand:
		if len(args) != 1 {
			return commands.NewError(commands.MalformedInput, "init takes exactly one key id, got %d arguments", len(args))
		}
		return app.Init(args[0])
	case StoreSubcommand:
		return app.Store()
	case GetSubcommand:
		return app.Get()
	case ListSubcommand:
		return app.List()
	case EraseSubcommand:
		return app.Erase()
	}

	return commands.NewError(
		commands.MalformedInput,
		"%s",
		utils.ResolvePlaceholderString(app.Tr.UnknownSubcommand, map[string]string{"subcommand": subcommand}),
	)
}

// Init initialises the password store with keyID. Whatever the password
// store prints is logged; its exit status only produces a warning.
func (app *App) Init(keyID string) error {
	root, err := app.storeDir()
	if err != nil {
		return err
	}

	pass, err := app.passCommand(root)
	if err != nil {
		return err
	}

	app.Log.Info(utils.ResolvePlaceholderString(app.Tr.InitialisingStore, map[string]string{
		"dir": root,
		"key": keyID,
	}))

	return pass.Init(keyID)
}

// Store reads a credentials object from stdin and inserts its secret into the
// password store under {encoded server url}/{username}
func (app *App) Store() error {
	root, err := app.storeDir()
	if err != nil {
		return err
	}

	pass, err := app.passCommand(root)
	if err != nil {
		return err
	}

	app.Log.Info(app.Tr.EnterAuthDetails)
	creds, err := protocol.DecodeCredentials(app.Stdin)
	if err != nil {
		return err
	}

	app.Log.Debug("Received auth details:")
	app.Log.Debugf("   ServerURL = %s", creds.ServerURL)
	app.Log.Debugf("   Username  = %s", creds.Username)
	app.Log.Debug("   Secret    = <a secret>")

	entry := app.newStore(root).EntryName(creds.ServerURL, creds.Username)
	app.Log.Info(utils.ResolvePlaceholderString(app.Tr.StoringSecret, map[string]string{"entry": entry}))

	return pass.Insert(entry, creds.Secret)
}

// Get reads a server url from stdin and prints the username and secret
// stored for it
func (app *App) Get() error {
	root, err := app.storeDir()
	if err != nil {
		return err
	}

	pass, err := app.passCommand(root)
	if err != nil {
		return err
	}

	app.Log.Info(app.Tr.EnterServerURL)
	serverURL, err := protocol.ReadServerURL(app.Stdin)
	if err != nil {
		return err
	}

	s := app.newStore(root)
	username, err := s.FindUsername(serverURL)
	if err != nil {
		return err
	}

	secret, err := pass.Show(s.EntryName(serverURL, username))
	if err != nil {
		return err
	}

	payload, err := protocol.EncodeGetResponse(username, secret)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(app.Stdout, payload)
	return commands.WrapError(err)
}

// List prints every stored server url with its username. It never runs the
// password store, so it works without it being installed.
func (app *App) List() error {
	root, err := app.storeDir()
	if err != nil {
		return err
	}

	serverUsernames, err := app.newStore(root).List()
	if err != nil {
		return err
	}

	payload, err := protocol.EncodeListResponse(serverUsernames)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(app.Stdout, payload)
	return commands.WrapError(err)
}

// Erase reads a server url from stdin and removes everything stored for it
func (app *App) Erase() error {
	root, err := app.storeDir()
	if err != nil {
		return err
	}

	app.Log.Info(app.Tr.EnterServerURL)
	serverURL, err := protocol.ReadServerURL(app.Stdin)
	if err != nil {
		return err
	}

	if err := app.newStore(root).Erase(serverURL); err != nil {
		return err
	}

	app.Log.Info(app.Tr.ErasedCredentials)
	return nil
}

func (app *App) storeDir() (string, error) {
	root, err := app.storeDirResolver.Resolve(app.Config.UserConfig)
	if err != nil {
		return "", commands.WrapErrorWithCode(commands.ConfigError, err)
	}
	app.Log.Debugf("Password store is '%s'", root)
	return root, nil
}

func (app *App) newStore(root string) *store.Store {
	return store.NewStore(app.Log, app.Fs, root, app.Config.UserConfig)
}

func (app *App) passCommand(root string) (*commands.PassCommand, error) {
	return commands.NewPassCommand(app.Log, app.OSCommand, app.Config.UserConfig.PassCommand, root)
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than a stack trace
func (app *App) KnownError(err error) (string, bool) {
	messages := map[int]string{
		commands.ConfigError:     app.Tr.NoHomeDirError,
		commands.NotFound:        app.Tr.CredentialsNotFound,
		commands.MalformedInput:  app.Tr.MalformedInputError,
		commands.SubprocessError: app.Tr.PassCommandError,
		commands.FilesystemError: app.Tr.StoreAccessError,
		commands.EncodingError:   app.Tr.InvalidEncodingError,
	}

	message, known := messages[commands.ErrorCode(err)]
	if !known {
		return "", false
	}

	return utils.ResolvePlaceholderString(message, map[string]string{"error": err.Error()}), true
}
