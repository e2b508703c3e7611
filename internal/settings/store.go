package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables overriding persisted settings.
	EnvPrefix = "MDCOMBINE"
	// DefaultConfigName is the directory and base name of the settings file.
	DefaultConfigName = "mdcombine"

	dirMode = 0o755
)

// FileStore persists settings in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. An empty path selects
// [DefaultPath].
func NewFileStore(path string) (*FileStore, error) {
	if len(path) == 0 {
		var err error

		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	return &FileStore{path: path}, nil
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config dir: %w", err)
	}

	return filepath.Join(dir, DefaultConfigName, "config.yaml"), nil
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) viper() *viper.Viper {
	v := viper.New()

	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	for key, value := range Default().Map() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

// Load reads the persisted settings over the defaults. A missing file is not
// an error.
func (s *FileStore) Load() (Settings, error) {
	v := s.viper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("failed to read config: %w", err)
		}
	}

	var out Settings

	if err := v.Unmarshal(&out); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	out.LanguageIncludeList = NormalizeLanguages(out.LanguageIncludeList)
	out.LanguageExcludeList = NormalizeLanguages(out.LanguageExcludeList)

	if err := out.Validate(); err != nil {
		return Default(), err
	}

	return out, nil
}

// Save writes every setting of cfg to the store file.
func (s *FileStore) Save(cfg Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	for key, value := range cfg.Map() {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
