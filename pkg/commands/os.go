package commands

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/christophe-duc/docker-credential-truth/pkg/config"
	"github.com/christophe-duc/docker-credential-truth/pkg/utils"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// CommandOutput is everything a finished command left behind
type CommandOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// OSCommand holds all the os commands
type OSCommand struct {
	Log      *logrus.Entry
	Config   *config.AppConfig
	command  func(string, ...string) *exec.Cmd
	lookPath func(string) (string, error)
}

// NewOSCommand os command runner
func NewOSCommand(log *logrus.Entry, config *config.AppConfig) *OSCommand {
	return &OSCommand{
		Log:      log,
		Config:   config,
		command:  exec.Command,
		lookPath: exec.LookPath,
	}
}

// SetCommand sets the command function used by the struct.
// To be used for testing only
func (c *OSCommand) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	c.command = cmd
}

// NewCmd returns a command inheriting our environment. Callers append to
// cmd.Env to hand the child anything extra.
func (c *OSCommand) NewCmd(cmdName string, commandArgs ...string) *exec.Cmd {
	cmd := c.command(cmdName, commandArgs...)
	cmd.Env = os.Environ()
	return cmd
}

// FindExecutable splits a command string like `gopass --nosync` into the
// executable's full path and any leading arguments
func (c *OSCommand) FindExecutable(commandStr string) (string, []string, error) {
	if strings.TrimSpace(commandStr) == "" {
		return "", nil, NewError(SubprocessError, "no password store command configured")
	}

	splitCmd := str.ToArgv(commandStr)
	if len(splitCmd) == 0 {
		return "", nil, NewError(SubprocessError, "no password store command configured")
	}

	path, err := c.lookPath(splitCmd[0])
	if err != nil {
		return "", nil, NewError(SubprocessError, "could not find '%s' on your PATH: %v", splitCmd[0], err)
	}

	return path, splitCmd[1:], nil
}

// RunCommandWithOutput runs a prepared command and captures its output. A
// non-zero exit status is reported through ExitCode rather than as an error;
// only failing to run the command at all is an error.
func (c *OSCommand) RunCommandWithOutput(cmd *exec.Cmd) (*CommandOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	before := time.Now()
	c.Log.Debug("   run: " + strings.Join(cmd.Args, " "))
	err := cmd.Run()
	c.Log.Trace(fmt.Sprintf("'%s': %s", strings.Join(cmd.Args, " "), time.Since(before)))

	return commandOutput(cmd, &stdout, &stderr, err)
}

// RunCommandWithInput is like RunCommandWithOutput but writes input to the
// command's stdin and closes it before waiting for the command to finish
func (c *OSCommand) RunCommandWithInput(cmd *exec.Cmd, input []byte) (*CommandOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, WrapErrorWithCode(SubprocessError, err)
	}

	c.Log.Debug("   run: " + strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return nil, WrapErrorWithCode(SubprocessError, err)
	}

	_, writeErr := stdin.Write(input)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if writeErr != nil {
		return nil, NewError(SubprocessError, "failed to write to the stdin of %s: %v", cmd.Path, writeErr)
	}
	if closeErr != nil {
		return nil, NewError(SubprocessError, "failed to close the stdin of %s: %v", cmd.Path, closeErr)
	}

	return commandOutput(cmd, &stdout, &stderr, waitErr)
}

func commandOutput(cmd *exec.Cmd, stdout, stderr *bytes.Buffer, err error) (*CommandOutput, error) {
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, WrapErrorWithCode(SubprocessError, err)
		}
	}

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return &CommandOutput{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode,
	}, nil
}

// LogCommandOutput logs every line of stdout and then every line of stderr
// at debug level
func (c *OSCommand) LogCommandOutput(output *CommandOutput) error {
	streams := []struct {
		name    string
		content []byte
	}{
		{"stdout", output.Stdout},
		{"stderr", output.Stderr},
	}

	for _, stream := range streams {
		err := utils.ForEachLine(stream.content, func(line string) {
			c.Log.Debugf("%s: %s", stream.name, line)
		})
		if err != nil {
			return WrapErrorWithCode(EncodingError, err)
		}
	}

	return nil
}
