package fs

import (
	"os"
	"path/filepath"
	"strings"

	"sheetfuse/domain/core"
)

// DefaultExtensions are the workbook extensions picked up when the config
// does not override them.
var DefaultExtensions = []string{".xlsx", ".xlsm"}

// ListWorkbooks returns the candidate spreadsheet paths directly under dir,
// filtered by extension, in directory-listing (lexicographic) order. Office
// lock files (~$...) are skipped. The directory is validated up front: a
// missing or non-directory path fails before any file is touched.
func ListWorkbooks(dir string, extensions []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, core.NewSourceDirError(dir, err.Error())
	}
	if !info.IsDir() {
		return nil, core.NewSourceDirError(dir, "not a directory")
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.NewSourceDirError(dir, err.Error())
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(name))] {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
