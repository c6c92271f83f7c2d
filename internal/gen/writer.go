package gen

import (
	"fmt"
	"os"
)

// File permission constants.
const (
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// Package directories must already exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir == "" {
			return fmt.Errorf("writing file %s: package directory is unknown", file.Filename)
		}

		err := os.WriteFile(file.Path(), file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
