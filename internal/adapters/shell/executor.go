// Package shell provides the external tool executor.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs cmd with its explicit environment merged over the process
// environment. PATH entries from the command env are prepended to the
// system PATH. Tool output is surfaced verbatim; no translation, retry,
// or recovery happens here.
func (e *Executor) Execute(ctx context.Context, root string, cmd domain.Command) error {
	if len(cmd.Argv) == 0 {
		return nil
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	env := mergeEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) && strings.ContainsRune(name, os.PathSeparator) {
		// Relative tool paths (e.g. the venv interpreter) anchor at the root.
		executable = filepath.Join(root, name)
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the planner
	if len(c.Args) > 0 {
		c.Args[0] = name
	}

	c.Dir = root
	if cmd.Dir != "" {
		c.Dir = filepath.Join(root, cmd.Dir)
	}
	c.Env = env

	stdout, stderr := e.outputs(ctx)
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
			"command", name),
			"exit_code", exitCode,
		)
	}

	return nil
}

// outputs picks the destination for tool output. The logger always gets a
// copy; a recording vertex attached to the context gets one too.
func (e *Executor) outputs(ctx context.Context) (io.Writer, io.Writer) {
	info := &logWriter{logger: e.logger, level: "info"}
	errw := &logWriter{logger: e.logger, level: "error"}
	if v, ok := ports.VertexFromContext(ctx); ok {
		return io.MultiWriter(v.Stdout(), info), io.MultiWriter(v.Stderr(), errw)
	}
	return info, errw
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for line := range strings.SplitSeq(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// mergeEnvironment overlays explicit command variables onto the system
// environment. PATH is special-cased: command PATH entries are prepended
// so tools installed by earlier commands win lookup.
func mergeEnvironment(sysEnv, cmdEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	order := make([]string, 0, len(sysEnv)+len(cmdEnv))

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range cmdEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				set(k, v+string(os.PathListSeparator)+sysPath)
				continue
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
