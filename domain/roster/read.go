package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"namestat/internal/errors"
)

// ReadNames reads comma-separated name entries from a UTF-8 text file and
// normalises formatting. Every entry is trimmed of surrounding whitespace
// and empty entries are dropped.
func ReadNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("names file '%s'", path))
		}
		if os.IsPermission(err) {
			return nil, errors.PermissionDenied(fmt.Sprintf("cannot read names file '%s'", path), err)
		}
		return nil, errors.Wrapf(err, "failed to open names file '%s'", path)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, errors.DecodeError(fmt.Sprintf("line %d of '%s' is not valid UTF-8", lineNo, path))
		}
		names = append(names, SplitEntries(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read names file '%s'", path)
	}

	return names, nil
}

// SplitEntries splits one input line into cleaned name entries
func SplitEntries(line string) []string {
	var entries []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}
