package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap's sugared logger so callers depend on
// this package, not on zap directly.
type Logger struct {
	*zap.SugaredLogger
}

// Log is the package-level logger. Init must be called before use.
var Log *Logger

var (
	base    *zap.Logger
	logFile *os.File
)

type Config struct {
	Debug        bool
	TimeLocation string
	LogToFile    bool
	LogsDir      string
}

// Init configures the package-level logger. A console core is always
// installed; a file core is added when LogToFile is set.
func Init(cfg Config) error {
	loc := time.UTC
	if cfg.TimeLocation != "" {
		l, err := time.LoadLocation(cfg.TimeLocation)
		if err != nil {
			return fmt.Errorf("load time location: %w", err)
		}
		loc = l
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format("2006-01-02 15:04:05"))
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if cfg.LogToFile {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		name := filepath.Join(cfg.LogsDir, time.Now().In(loc).Format("2006-01-02")+".log")
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(f),
			level,
		))
	}

	base = zap.New(zapcore.NewTee(cores...))
	Log = &Logger{base.Sugar()}
	return nil
}

// Named returns a child logger with the given name attached.
func Named(name string) (*Logger, error) {
	if base == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return &Logger{base.Sugar().Named(name)}, nil
}

// Cleanup flushes buffered log entries and closes the log file if any.
func Cleanup() error {
	if base != nil {
		// Stdout sync errors are expected on some platforms, ignore them.
		_ = base.Sync()
	}
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
