package logsplit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"namestat/internal/errors"
)

// SplitByLevel splits a log file into one file per log level in outputDir.
// The level is the third whitespace-separated token of each line; lines with
// fewer than three tokens are skipped. Returns a map from level to the path
// of the file it was written to.
func SplitByLevel(logPath, outputDir string) (map[string]string, error) {
	file, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("log file '%s'", logPath))
		}
		return nil, errors.Wrapf(err, "failed to open log file '%s'", logPath)
	}
	defer file.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory '%s'", outputDir)
	}

	levelPaths := make(map[string]string)
	levelFiles := make(map[string]*os.File)
	defer func() {
		for _, handle := range levelFiles {
			handle.Close()
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		level := parts[2]

		handle, ok := levelFiles[level]
		if !ok {
			path := filepath.Join(outputDir, fmt.Sprintf("%s_logs.txt", level))
			handle, err = os.Create(path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to create '%s'", path)
			}
			levelFiles[level] = handle
			levelPaths[level] = path
		}

		if _, err := fmt.Fprintln(handle, line); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s log line", level)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read log file '%s'", logPath)
	}

	return levelPaths, nil
}

// CountLines counts the lines of a file, used to verify a split covered the
// whole input
func CountLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.NotFound(fmt.Sprintf("file '%s'", path))
		}
		return 0, errors.Wrapf(err, "failed to open '%s'", path)
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrapf(err, "failed to count lines of '%s'", path)
	}
	return count, nil
}
