package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the optional log file.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// NewWriter returns the destination for log records. With an empty path it
// is stdout; otherwise records go to stdout and to a rotating file at path.
// The returned closer releases the file and is safe to call when no file
// was opened.
func NewWriter(path string) (io.Writer, io.Closer) {
	if path == "" {
		return os.Stdout, nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	return io.MultiWriter(os.Stdout, rotating), rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewFileWriter is NewWriter without the stdout copy, for interactive
// programs whose terminal belongs to the user. An empty path discards.
func NewFileWriter(path string) (io.Writer, io.Closer) {
	if path == "" {
		return io.Discard, nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	return rotating, rotating
}
