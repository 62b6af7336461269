package main

import (
	"log/slog"
	"os"
	"runtime/pprof"
)

// profiler records a CPU profile for the lifetime of a move and writes an
// allocation profile when it is stopped. Both are optional.
type profiler struct {
	cpuFile *os.File
	memPath string
}

func startProfiling(cpuPath string, memPath string) *profiler {
	p := &profiler{memPath: memPath}

	if cpuPath == "" {
		return p
	}

	f, err := os.Create(cpuPath)
	if err != nil {
		slog.Error("Could not create cpu profile", "err", err)

		return p
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		slog.Error("Could not start cpu profile", "err", err)
		f.Close()

		return p
	}
	p.cpuFile = f

	return p
}

func (p *profiler) Stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}

	if p.memPath == "" {
		return
	}

	f, err := os.Create(p.memPath)
	if err != nil {
		slog.Error("Could not create allocs profile", "err", err)

		return
	}
	defer f.Close()

	if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
		slog.Error("Could not write allocs profile", "err", err)
	}
}
