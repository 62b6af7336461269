// Package main implements handoff, a tool that safely moves a completed
// download from the download base into the completed base. It is meant to be
// run as an aria2 on-download-complete hook:
//
//	handoff <gid> <num-files> <first-file-path>
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = exitOK
	Version  string
)

// setupSignalHandlers cancels the context on SIGINT or SIGTERM, so that the
// engine stops at the next step or tree entry. SIGUSR1 dumps the stacks of
// all goroutines to stderr, for diagnosing a hung invocation.
func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandlers(cancel)

	logs := newLogSetup(os.Stderr)
	defer logs.Close()

	out := newPrinter(os.Stdout, os.Stderr)

	if err := newRootCommand(logs, out).ExecuteContext(ctx); err != nil {
		ExitCode = exitCodeFor(err)
		out.Failure(err)
	}
}
