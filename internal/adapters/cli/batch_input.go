package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"
)

// ParseInputFile reads a file containing media paths, one per line.
// Blank lines and lines starting with # are ignored.
func ParseInputFile(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// CollectInputs combines paths given on the command line with those read
// from a list file, deduplicating. Command-line paths come first.
func CollectInputs(fs afero.Fs, args []string, listPath string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	for _, arg := range args {
		add(arg)
	}

	if listPath != "" {
		filePaths, err := ParseInputFile(fs, listPath)
		if err != nil {
			return nil, err
		}
		for _, p := range filePaths {
			add(p)
		}
	}

	return paths, nil
}
