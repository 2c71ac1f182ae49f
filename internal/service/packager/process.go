package packager

import (
	"context"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/notes-release/internal/logger"
)

// processLister returns a snapshot of the process table.
type processLister func() ([]ps.Process, error)

// systemProcesses reads the real process table.
func systemProcesses() ([]ps.Process, error) {
	return ps.Processes()
}

// findProcesses returns the PIDs of processes whose executable matches name.
func findProcesses(list processLister, name string) ([]int, error) {
	processes, err := list()
	if err != nil {
		return nil, err
	}

	var pids []int

	for _, process := range processes {
		if strings.EqualFold(process.Executable(), name) {
			pids = append(pids, process.Pid())
		}
	}

	return pids, nil
}

// warnIfRunning logs a warning when the packaged application is running,
// since it keeps its files locked while the generator reads them.
func (p *pipeline) warnIfRunning(ctx context.Context, executable string) {
	pids, err := findProcesses(p.listProcesses, executable)
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)
		return
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Packaged application is running, the generator may fail on locked files",
			"executable", executable, "pids", pids)
	}
}
