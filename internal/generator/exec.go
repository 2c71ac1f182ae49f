package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/oshokin/notes-release/internal/domain/release"
	"github.com/oshokin/notes-release/internal/logger"
)

// DefaultCommand runs the project's Squirrel maker script through node.
//
//nolint:gochecknoglobals // Read-only default for the --generator flag.
var DefaultCommand = []string{"node", "scripts/make-squirrel.mjs"}

var errEmptyCommand = errors.New("generator command is empty")

// Exec runs an external command, passing the installer configuration as
// a JSON file whose path is appended as the last argument.
type Exec struct {
	// name is the executable to run.
	name string
	// args are the fixed arguments preceding the configuration path.
	args []string
	// dir is the working directory of the command.
	dir string
}

// NewExec creates an Exec generator from a command line split into words.
func NewExec(command []string, dir string) (*Exec, error) {
	if len(command) == 0 || strings.TrimSpace(command[0]) == "" {
		return nil, errEmptyCommand
	}

	return &Exec{
		name: command[0],
		args: append([]string(nil), command[1:]...),
		dir:  dir,
	}, nil
}

// Generate writes cfg to a temporary file and runs the command to completion.
// There is no timeout; only ctx cancellation stops the command.
func (e *Exec) Generate(ctx context.Context, cfg *release.InstallerConfig) error {
	configFile, err := os.CreateTemp("", "squirrel-config-*.json")
	if err != nil {
		return fmt.Errorf("create generator config: %w", err)
	}

	defer func() {
		_ = os.Remove(configFile.Name())
	}()

	encoder := json.NewEncoder(configFile)
	encoder.SetIndent("", "  ")

	if err = encoder.Encode(cfg); err != nil {
		_ = configFile.Close()

		return fmt.Errorf("encode generator config: %w", err)
	}

	if err = configFile.Close(); err != nil {
		return fmt.Errorf("close generator config: %w", err)
	}

	args := append(append([]string(nil), e.args...), configFile.Name())

	//nolint:gosec // The command comes from the operator's own settings.
	cmd := exec.CommandContext(ctx, e.name, args...)
	cmd.Dir = e.dir

	stdout := newLineLogger(ctx, false)
	stderr := newLineLogger(ctx, true)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.InfoKV(ctx, "Running installer generator", "command", e.name, "args", args)

	err = cmd.Run()

	stdout.Flush()
	stderr.Flush()

	if err != nil {
		return fmt.Errorf("run installer generator %s: %w", e.name, err)
	}

	return nil
}

// lineLogger forwards whole lines written by a child process to the logger.
type lineLogger struct {
	ctx    context.Context //nolint:containedctx // Lines are logged with the caller's context.
	stderr bool

	mu      sync.Mutex
	pending bytes.Buffer
}

func newLineLogger(ctx context.Context, stderr bool) *lineLogger {
	return &lineLogger{ctx: ctx, stderr: stderr}
}

// Write implements io.Writer.
func (l *lineLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending.Write(p)

	for {
		line, err := l.pending.ReadString('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			l.pending.Reset()
			l.pending.WriteString(line)

			break
		}

		l.emit(strings.TrimRight(line, "\r\n"))
	}

	return len(p), nil
}

// Flush logs a trailing line without a newline terminator.
func (l *lineLogger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending.Len() > 0 {
		l.emit(l.pending.String())
		l.pending.Reset()
	}
}

func (l *lineLogger) emit(line string) {
	if line == "" {
		return
	}

	if l.stderr {
		logger.WarnKV(l.ctx, line, "stream", "stderr")
		return
	}

	logger.DebugKV(l.ctx, line, "stream", "stdout")
}
