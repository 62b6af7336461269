package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	consoleHandler = "console"
	fileHandler    = "file"

	logFilePerms = 0o600
)

// SlogManager is a [slog.Handler] fanning out every record to a set of named
// handlers, which can be added and removed while it is in use.
type SlogManager struct {
	sync.RWMutex
	handlers map[string]slog.Handler
	attrs    []slog.Attr
	groups   []string
}

func NewSlogManager() *SlogManager {
	return &SlogManager{
		handlers: make(map[string]slog.Handler),
	}
}

func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}

	return nil
}

func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	newLm := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    append(append([]slog.Attr{}, m.attrs...), attrs...),
		groups:   append([]string{}, m.groups...),
	}

	for name, h := range m.handlers {
		newLm.handlers[name] = h.WithAttrs(attrs)
	}

	return newLm
}

func (m *SlogManager) WithGroup(name string) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	newLm := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    append([]slog.Attr{}, m.attrs...),
		groups:   append(append([]string{}, m.groups...), name),
	}

	for handlerName, h := range m.handlers {
		newLm.handlers[handlerName] = h.WithGroup(name)
	}

	return newLm
}

func (m *SlogManager) GetHandler(name string) (slog.Handler, bool) {
	m.RLock()
	defer m.RUnlock()

	h, ok := m.handlers[name]

	return h, ok
}

// AddHandler adds (or replaces) a named handler, carrying over the attributes
// and groups the manager was derived with.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.Lock()
	defer m.Unlock()

	h := handler
	if len(m.attrs) > 0 {
		h = h.WithAttrs(m.attrs)
	}

	for _, group := range m.groups {
		h = h.WithGroup(group)
	}

	m.handlers[name] = h
}

func (m *SlogManager) RemoveHandler(name string) {
	m.Lock()
	defer m.Unlock()

	delete(m.handlers, name)
}

type logFileChecker interface {
	CheckLogFile(path string) error
}

// logSetup owns the process logging: a console handler on stderr and an
// optional JSON file handler, sharing one adjustable level.
type logSetup struct {
	manager *SlogManager
	level   *slog.LevelVar
	console io.Writer
	color   bool
	file    *os.File
}

// newLogSetup installs a console logger on w at [slog.LevelInfo] as the
// default logger. It is reconfigured once the configuration is known.
func newLogSetup(w io.Writer) *logSetup {
	s := &logSetup{
		manager: NewSlogManager(),
		level:   &slog.LevelVar{},
		console: w,
	}

	if f, ok := w.(*os.File); ok {
		s.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	s.level.Set(slog.LevelInfo)
	s.SetConsole(false)
	slog.SetDefault(slog.New(s.manager))

	return s
}

// SetLevel changes the level of all handlers.
func (s *logSetup) SetLevel(level slog.Level) {
	s.level.Set(level)
}

// SetConsole switches the console handler between colored text and JSON.
func (s *logSetup) SetConsole(asJSON bool) {
	if asJSON {
		s.manager.AddHandler(consoleHandler, slog.NewJSONHandler(s.console, &slog.HandlerOptions{
			Level: s.level,
		}))

		return
	}

	s.manager.AddHandler(consoleHandler, tint.NewHandler(s.console, &tint.Options{
		Level:      s.level,
		TimeFormat: time.Kitchen,
		NoColor:    !s.color,
	}))
}

// AttachFile adds a JSON handler appending to the log file at path. The path
// must pass the symbolic link checks, and the file itself is never followed
// if it is a symbolic link.
func (s *logSetup) AttachFile(path string, checker logFileChecker) error {
	if err := checker.CheckLogFile(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND|syscall.O_NOFOLLOW, logFilePerms)
	if err != nil {
		return fmt.Errorf("(log-file) failed to open: %w", err)
	}

	if s.file != nil {
		s.file.Close()
	}
	s.file = f

	s.manager.AddHandler(fileHandler, slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: s.level,
	}))

	return nil
}

// Close detaches and closes the log file, if any.
func (s *logSetup) Close() {
	if s.file == nil {
		return
	}

	s.manager.RemoveHandler(fileHandler)

	if err := s.file.Sync(); err != nil {
		slog.Debug("Failed to sync the log file.", "err", err)
	}
	s.file.Close()
	s.file = nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("(log-level) %w", err)
	}

	return level, nil
}
