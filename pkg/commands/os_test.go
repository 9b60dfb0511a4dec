package commands

import (
	"os/exec"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// TestOSCommandRunCommandWithOutput is a function.
func TestOSCommandRunCommandWithOutput(t *testing.T) {
	type scenario struct {
		name string
		args []string
		test func(*CommandOutput, error)
	}

	scenarios := []scenario{
		{
			"echo",
			[]string{"echo", "-n", "123"},
			func(output *CommandOutput, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "123", string(output.Stdout))
				assert.Empty(t, output.Stderr)
				assert.EqualValues(t, 0, output.ExitCode)
			},
		},
		{
			"non-zero exit status is not an error",
			[]string{"sh", "-c", "echo out; echo err >&2; exit 3"},
			func(output *CommandOutput, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "out\n", string(output.Stdout))
				assert.EqualValues(t, "err\n", string(output.Stderr))
				assert.EqualValues(t, 3, output.ExitCode)
			},
		},
		{
			"missing executable",
			[]string{"definitely-not-an-executable-on-the-path"},
			func(output *CommandOutput, err error) {
				assert.Nil(t, output)
				assert.True(t, HasErrorCode(err, SubprocessError))
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			osCommand := NewDummyOSCommand()
			s.test(osCommand.RunCommandWithOutput(osCommand.NewCmd(s.args[0], s.args[1:]...)))
		})
	}
}

// TestOSCommandRunCommandWithInput is a function.
func TestOSCommandRunCommandWithInput(t *testing.T) {
	type scenario struct {
		name  string
		args  []string
		input string
		test  func(*CommandOutput, error)
	}

	scenarios := []scenario{
		{
			"input reaches the command",
			[]string{"cat"},
			"s3cr3t\n",
			func(output *CommandOutput, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "s3cr3t\n", string(output.Stdout))
			},
		},
		{
			"stdin is closed so the command can finish",
			[]string{"sh", "-c", "wc -l"},
			"one\ntwo\n",
			func(output *CommandOutput, err error) {
				assert.NoError(t, err)
				assert.Regexp(t, `^\s*2\s*$`, string(output.Stdout))
			},
		},
		{
			"missing executable",
			[]string{"definitely-not-an-executable-on-the-path"},
			"s3cr3t\n",
			func(output *CommandOutput, err error) {
				assert.Nil(t, output)
				assert.True(t, HasErrorCode(err, SubprocessError))
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			osCommand := NewDummyOSCommand()
			s.test(osCommand.RunCommandWithInput(osCommand.NewCmd(s.args[0], s.args[1:]...), []byte(s.input)))
		})
	}
}

func TestOSCommandLogCommandOutput(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	osCommand := NewDummyOSCommand()
	osCommand.Log = logrus.NewEntry(logger)

	err := osCommand.LogCommandOutput(&CommandOutput{
		Stdout: []byte("first\r\nsecond\nthird"),
		Stderr: []byte("warning\n"),
	})
	assert.NoError(t, err)

	messages := []string{}
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		messages = append(messages, entry.Message)
	}

	assert.EqualValues(t, []string{
		"stdout: first",
		"stdout: second",
		"stdout: third",
		"stderr: warning",
	}, messages)
}

func TestOSCommandLogCommandOutputInvalidUTF8(t *testing.T) {
	osCommand := NewDummyOSCommand()

	err := osCommand.LogCommandOutput(&CommandOutput{
		Stdout: []byte("fine\n"),
		Stderr: []byte("\xff\n"),
	})

	assert.True(t, HasErrorCode(err, EncodingError))
}

func TestOSCommandFindExecutable(t *testing.T) {
	type scenario struct {
		name       string
		commandStr string
		lookPath   func(string) (string, error)
		test       func(string, []string, error)
	}

	scenarios := []scenario{
		{
			"plain command",
			"pass",
			func(name string) (string, error) {
				assert.EqualValues(t, "pass", name)
				return "/usr/bin/pass", nil
			},
			func(path string, args []string, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "/usr/bin/pass", path)
				assert.Empty(t, args)
			},
		},
		{
			"command with leading arguments",
			"gopass --nosync",
			func(name string) (string, error) {
				assert.EqualValues(t, "gopass", name)
				return "/usr/local/bin/gopass", nil
			},
			func(path string, args []string, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "/usr/local/bin/gopass", path)
				assert.EqualValues(t, []string{"--nosync"}, args)
			},
		},
		{
			"not on the path",
			"pass",
			func(name string) (string, error) {
				return "", errors.New("executable file not found in $PATH")
			},
			func(path string, args []string, err error) {
				assert.True(t, HasErrorCode(err, SubprocessError))
				assert.Contains(t, err.Error(), "could not find 'pass' on your PATH")
			},
		},
		{
			"empty command",
			"   ",
			func(name string) (string, error) {
				t.Fatal("lookPath should not be called")
				return "", nil
			},
			func(path string, args []string, err error) {
				assert.True(t, HasErrorCode(err, SubprocessError))
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			osCommand := NewDummyOSCommand()
			osCommand.lookPath = s.lookPath
			s.test(osCommand.FindExecutable(s.commandStr))
		})
	}
}

func TestOSCommandSetCommand(t *testing.T) {
	osCommand := NewDummyOSCommand()
	osCommand.SetCommand(func(name string, args ...string) *exec.Cmd {
		assert.EqualValues(t, "pass", name)
		assert.EqualValues(t, []string{"ls"}, args)
		return exec.Command("echo", "intercepted")
	})

	output, err := osCommand.RunCommandWithOutput(osCommand.NewCmd("pass", "ls"))
	assert.NoError(t, err)
	assert.EqualValues(t, "intercepted\n", string(output.Stdout))
}
