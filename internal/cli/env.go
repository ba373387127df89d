package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted for flag defaults.
const (
	envFormats = "FLOORPLAN_FORMATS"
	envOutput  = "FLOORPLAN_OUTPUT"
)

const defaultEnvFile = ".env"

// LoadEnv loads environment files into the process environment. Variables
// already set are kept. Missing files are ignored; with no arguments the
// .env file of the working directory is tried.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// envOr returns the value of key, or fallback when it is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
