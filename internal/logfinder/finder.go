// Package logfinder locates the Minecraft client log directory and its current log file.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// EnvLogDir is the environment variable name for specifying log directory.
const EnvLogDir = "MCLOG_LOGDIR"

// LatestLogName is the file the client writes the current session to.
// Older sessions are rotated to YYYY-MM-DD-N.log.gz.
const LatestLogName = "latest.log"

// Sentinel errors.
var (
	ErrLogDirNotFound = errors.New("log directory not found")
	ErrNoLogFiles     = errors.New("no log files found")
)

// DefaultLogDirs returns candidate log directories of the default launcher
// for the current OS, in priority order.
func DefaultLogDirs() []string {
	return defaultLogDirs(runtime.GOOS, os.Getenv)
}

func defaultLogDirs(goos string, getenv func(string) string) []string {
	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			if profile := getenv("USERPROFILE"); profile != "" {
				appData = filepath.Join(profile, "AppData", "Roaming")
			}
		}
		if appData == "" {
			return nil
		}
		return []string{filepath.Join(appData, ".minecraft", "logs")}
	case "darwin":
		home := getenv("HOME")
		if home == "" {
			return nil
		}
		return []string{filepath.Join(home, "Library", "Application Support", "minecraft", "logs")}
	default:
		home := getenv("HOME")
		if home == "" {
			return nil
		}
		return []string{
			filepath.Join(home, ".minecraft", "logs"),
			// Flatpak launcher
			filepath.Join(home, ".var", "app", "com.mojang.Minecraft", ".minecraft", "logs"),
		}
	}
}

// FindLogDir returns the Minecraft log directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. MCLOG_LOGDIR environment variable
//  3. Auto-detect from DefaultLogDirs()
//
// Returns ErrLogDirNotFound if no valid directory is found.
// The returned path has symlinks resolved.
func FindLogDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateLogDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or contains no log files", ErrLogDirNotFound)
	}

	if envDir := os.Getenv(EnvLogDir); envDir != "" {
		if resolved := resolveAndValidateLogDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrLogDirNotFound, EnvLogDir)
	}

	for _, dir := range DefaultLogDirs() {
		if resolved := resolveAndValidateLogDir(dir); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrLogDirNotFound
}

// logCandidate holds a log file path and its cached modification time.
type logCandidate struct {
	path    string
	modTime int64
}

// FindLatestLogFile returns latest.log in dir if it exists, otherwise the
// most recently modified uncompressed *.log file.
//
// Returns ErrNoLogFiles if no log files are found.
func FindLatestLogFile(dir string) (string, error) {
	latest := filepath.Join(dir, LatestLogName)
	if info, err := os.Lstat(latest); err == nil && info.Mode().IsRegular() {
		return latest, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return "", fmt.Errorf("globbing log files: %w", err)
	}

	// Stat once and keep the result, files may vanish while we sort.
	candidates := make([]logCandidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, logCandidate{
			path:    m,
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", ErrNoLogFiles
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})

	return candidates[0].path, nil
}

// resolveAndValidateLogDir resolves symlinks and checks the directory holds a log file.
// Returns the resolved path if valid, empty string otherwise.
func resolveAndValidateLogDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return ""
	}

	if _, err := FindLatestLogFile(resolved); err != nil {
		return ""
	}
	return resolved
}
