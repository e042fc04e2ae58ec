package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	// LogFlagLongFile modifies the logger output to include full path and line number
	// of the logging callsite, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile modifies the logger output to include filename and line number
	// of the logging callsite, e.g. main.go:123. It takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

const (
	defaultThresholdKB = 100 * 1000 // 100 MB logs by default.
	defaultMaxRolls    = 8          // keep 8 last logs by default.
)

type backendWriter struct {
	io.Writer
	logLevel Level
}

// Backend is a logging backend. Subsystems created from the backend write to
// the backend's writers. Backend provides atomic writes to its writers.
type Backend struct {
	flag      uint32
	isRunning uint32

	mu       sync.Mutex
	writers  []backendWriter
	rotators []*rotator.Rotator
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return NewBackendWithFlags(0)
}

// NewBackendWithFlags configures a Backend to use the specified flags rather
// than the default settings.
func NewBackendWithFlags(flag uint32) *Backend {
	return &Backend{flag: flag}
}

// AddLogFile adds a file which the log will write into on a certain
// log level with the default log rotation settings. It'll create the file if it doesn't exist.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogFileWithCustomRotator adds a file which the log will write into on a certain
// log level, with the specified log rotation settings.
// It'll create the file if it doesn't exist.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	logDir, _ := filepath.Split(logFile)
	// if the logDir is empty then `logFile` is in the cwd and there's no need to create any directory.
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Errorf("failed to create log directory: %+v", err)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Errorf("failed to create file rotator: %s", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rotators = append(b.rotators, r)
	b.writers = append(b.writers, backendWriter{Writer: r, logLevel: logLevel})
	return nil
}

// AddLogWriter adds a type implementing io.Writer which the log will write into on a certain
// log level.
func (b *Backend) AddLogWriter(logWriter io.Writer, logLevel Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writers = append(b.writers, backendWriter{Writer: logWriter, logLevel: logLevel})
}

// Run starts accepting log lines. Before Run is called every log line is dropped.
func (b *Backend) Run() {
	atomic.StoreUint32(&b.isRunning, 1)
}

// IsRunning returns true if backend.Run() has been called and false if it hasn't.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close stops the backend and closes all of its log rotators.
func (b *Backend) Close() {
	atomic.StoreUint32(&b.isRunning, 0)
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.rotators {
		_ = r.Close()
	}
	b.rotators = nil
}

func (b *Backend) write(level Level, line []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, writer := range b.writers {
		if level >= writer.logLevel {
			_, _ = writer.Write(line)
		}
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger uses the info verbosity level by default.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: uint32(LevelInfo), tag: subsystemTag, b: b}
}
