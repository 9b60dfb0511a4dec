package commands

import (
	"os/exec"
	"unicode/utf8"

	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/christophe-duc/docker-credential-truth/pkg/utils"
	"github.com/sirupsen/logrus"
)

// PassCommand runs the password store executable against one store directory
type PassCommand struct {
	Log        *logrus.Entry
	OSCommand  *OSCommand
	Executable string
	Args       []string
	StoreDir   string
}

// NewPassCommand locates the configured password store command on the PATH.
// Every command it runs is pointed at storeDir through its environment.
func NewPassCommand(log *logrus.Entry, osCommand *OSCommand, commandStr string, storeDir string) (*PassCommand, error) {
	executable, args, err := osCommand.FindExecutable(commandStr)
	if err != nil {
		return nil, err
	}

	return &PassCommand{
		Log:        log,
		OSCommand:  osCommand,
		Executable: executable,
		Args:       args,
		StoreDir:   storeDir,
	}, nil
}

func (c *PassCommand) newCmd(args ...string) *exec.Cmd {
	fullArgs := append(append([]string{}, c.Args...), args...)
	cmd := c.OSCommand.NewCmd(c.Executable, fullArgs...)
	cmd.Env = append(cmd.Env, config.StoreDirEnv(c.StoreDir))
	return cmd
}

func (c *PassCommand) warnOnFailure(output *CommandOutput) {
	if output.ExitCode != 0 {
		c.Log.Warnf("%s exited with status %d", c.Executable, output.ExitCode)
	}
}

// Init initialises the password store with the given key id
func (c *PassCommand) Init(keyID string) error {
	output, err := c.OSCommand.RunCommandWithOutput(c.newCmd("init", keyID))
	if err != nil {
		return err
	}

	c.warnOnFailure(output)
	return c.OSCommand.LogCommandOutput(output)
}

// Insert stores secret under entry, overwriting whatever was there
func (c *PassCommand) Insert(entry string, secret string) error {
	output, err := c.OSCommand.RunCommandWithInput(c.newCmd("insert", "-fe", entry), []byte(secret+"\n"))
	if err != nil {
		return err
	}

	c.warnOnFailure(output)
	return c.OSCommand.LogCommandOutput(output)
}

// Show returns the secret stored under entry, without its trailing newline
func (c *PassCommand) Show(entry string) (string, error) {
	output, err := c.OSCommand.RunCommandWithOutput(c.newCmd("show", entry))
	if err != nil {
		return "", err
	}

	// the secret itself goes to stdout, so only stderr is worth logging
	if err := c.OSCommand.LogCommandOutput(&CommandOutput{Stderr: output.Stderr}); err != nil {
		return "", err
	}

	if len(output.Stdout) == 0 && output.ExitCode != 0 {
		return "", NewError(SubprocessError, "%s show %s exited with status %d", c.Executable, entry, output.ExitCode)
	}

	if !utf8.Valid(output.Stdout) {
		return "", NewError(EncodingError, "the secret stored under %s is not valid UTF-8", entry)
	}

	return utils.TrimTrailingWhitespace(string(output.Stdout)), nil
}
