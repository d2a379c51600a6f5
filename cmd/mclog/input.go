package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/corviraptor/mclog-go/internal/logfinder"
	"github.com/corviraptor/mclog-go/internal/safefile"
)

// maxLogSize is the largest log file mclog will read (256MB).
const maxLogSize = 256 * 1024 * 1024

// stdinArg reads the log from standard input.
const stdinArg = "-"

// readLog loads the log named by args. With no argument the latest log in
// the detected log directory is used; "-" reads stdin.
func readLog(args []string, logDir string, stdin io.Reader, logger *slog.Logger) (string, error) {
	var path string
	switch {
	case len(args) > 0 && args[0] == stdinArg:
		data, err := io.ReadAll(io.LimitReader(stdin, maxLogSize+1))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) > maxLogSize {
			return "", fmt.Errorf("input exceeds %d bytes: %w", maxLogSize, safefile.ErrTooLarge)
		}
		return string(data), nil
	case len(args) > 0:
		path = args[0]
	default:
		dir, err := logfinder.FindLogDir(logDir)
		if err != nil {
			return "", err
		}
		path, err = logfinder.FindLatestLogFile(dir)
		if err != nil {
			return "", err
		}
	}

	logger.Debug("reading log file", "path", path)
	data, err := safefile.ReadRegular(path, maxLogSize)
	if err != nil {
		return "", fmt.Errorf("reading log file: %w", err)
	}
	return string(data), nil
}
