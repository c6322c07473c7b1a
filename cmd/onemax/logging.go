package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "onemax.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging builds the process logger.
// verbose adds an info-level console core on stderr; debug adds a debug-level JSON core
// writing to logs/onemax.log, rotated when it grows past maxLogSize. With neither set
// logging is disabled. The returned file is nil unless debug is set.
func setupLogging(debug, verbose bool) (*zap.Logger, *os.File, error) {
	var cores []zapcore.Core

	if verbose {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zap.InfoLevel,
		))
	}

	var logFile *os.File
	if debug {
		f, err := openLogFile()
		if err != nil {
			return nil, nil, err
		}
		logFile = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(f),
			zap.DebugLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil, nil
	}
	return zap.New(zapcore.NewTee(cores...)), logFile, nil
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("onemax-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
