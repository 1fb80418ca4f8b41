package path

import (
	"os"
	"path/filepath"
)

// ProjectRoot walks up from the working directory until it finds go.mod.
func ProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			panic("failed to find project root (go.mod)")
		}

		dir = parent
	}
}

// MigrationsDir is the goose migrations directory of the project.
func MigrationsDir() string {
	return filepath.Join(ProjectRoot(), "migrations")
}
