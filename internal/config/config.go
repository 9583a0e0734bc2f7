package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName  = ".env"
	overrideFileName = ".local.env"
)

// Keys read by skelgen.
const (
	KeyBasePath = "SKELGEN_BASE_PATH"
	KeyLayout   = "SKELGEN_LAYOUT"
	KeyDirPerm  = "SKELGEN_DIR_PERM"
	KeyFilePerm = "SKELGEN_FILE_PERM"
	KeyLogLevel = "SKELGEN_LOG_LEVEL"
)

// Config is a read-only key/value source.
type Config interface {
	Get(key string) string
	GetOrDefault(key, defaultValue string) string
}

// EnvFile layers <folder>/.env, then <folder>/.local.env, then the process
// environment. Later layers win.
type EnvFile struct {
	values map[string]string
}

// NewEnvFile reads the env files in folder. Missing files are skipped;
// unreadable or malformed ones are an error.
func NewEnvFile(folder string) (*EnvFile, error) {
	values := make(map[string]string)

	for _, name := range []string{defaultFileName, overrideFileName} {
		m, err := godotenv.Read(filepath.Join(folder, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		for k, v := range m {
			values[k] = v
		}
	}

	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		values[k] = v
	}

	return &EnvFile{values: values}, nil
}

// Get returns the value for key, or "" when unset.
func (e *EnvFile) Get(key string) string {
	return e.values[key]
}

// GetOrDefault returns the value for key, or defaultValue when it is unset
// or empty.
func (e *EnvFile) GetOrDefault(key, defaultValue string) string {
	if v, ok := e.values[key]; ok && v != "" {
		return v
	}
	return defaultValue
}

// ParsePerm reads an octal permission such as 0755, 755 or 0o755. An empty
// string yields def.
func ParsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	if !strings.HasPrefix(ss, "0") {
		ss = "0" + ss
	}
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	if u > 0o777 {
		return 0, fmt.Errorf("permission %s out of range", s)
	}
	return os.FileMode(u), nil
}
