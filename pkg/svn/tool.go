package svn

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/which"
	"github.com/rs/zerolog"
)

// tool is a located executable and the streams its commands write to
type tool struct {
	name    string
	path    string
	version string
	dir     string
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

func newTool(name string, opts []Option) (*tool, error) {
	path, err := which.Locate(name)
	if err != nil {
		return nil, err
	}

	t := &tool{
		name:   name,
		path:   path,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.GetLogger("svn." + name),
	}
	for _, opt := range opts {
		opt(t)
	}

	out, err := exec.Command(path, "--version", "--quiet").Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrToolExec, "cannot get '%s' version", name).
			WithDetail("path", path)
	}
	t.version = strings.TrimSpace(string(out))

	t.logger.Debug().
		Str("path", t.path).
		Str("version", t.version).
		Msg("Located tool")
	return t, nil
}

// run executes the tool with args and waits for it to exit. Unless quiet,
// stdout is forwarded line by line while the command runs.
func (t *tool) run(ctx context.Context, quiet bool, args []string) error {
	logging.LogCommand(t.path, args)

	cmd := exec.CommandContext(ctx, t.path, args...)
	cmd.Dir = t.dir
	cmd.Stderr = t.stderr

	if quiet {
		cmd.Stdout = io.Discard
		if err := cmd.Run(); err != nil {
			return t.execError(args, err)
		}
		return nil
	}

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return t.execError(args, err)
	}
	if err := cmd.Start(); err != nil {
		return t.execError(args, err)
	}

	readErr := t.stream(pipe)
	if readErr != nil {
		// Keep draining so the child does not block writing to a full pipe
		_, _ = io.Copy(io.Discard, pipe)
	}

	if err := cmd.Wait(); err != nil {
		return t.execError(args, err)
	}
	if readErr != nil {
		return errors.Wrapf(readErr, errors.ErrToolOutput, "reading '%s %s' output", t.name, args[0]).
			WithDetail("args", args)
	}
	return nil
}

// stream copies lines from r to stdout until EOF
func (t *tool) stream(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(t.stdout, strings.TrimRight(line, "\r\n")+"\n"); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *tool) execError(args []string, err error) error {
	t.logger.Error().
		Err(err).
		Str("command", t.path).
		Strs("args", args).
		Msg("Command execution failed")

	return errors.Wrapf(err, errors.ErrToolExec, "'%s %s' failed", t.name, args[0]).
		WithDetail("args", args)
}
