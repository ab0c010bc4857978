package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/odpf/salt/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultFilename      = "console"
	DefaultFileExtension = "yaml"
	DefaultEnvPrefix     = "CONSOLE"
	EmptyPath            = ""
)

var FS = afero.NewReadOnlyFs(afero.NewOsFs())

// LoadClientConfig load the client config from these locations:
// 1. filepath. ./console <command> -c "path/to/config/console.yaml"
// 2. current dir. console will look at current directory if there's console.yaml there, use it
// env vars prefixed with CONSOLE_ override file values in both cases
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	currPath, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting current work directory path: %w", err)
	}
	return loadClientConfigFs(FS, filePath, currPath)
}

func loadClientConfigFs(fs afero.Fs, filePath, currPath string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	v := viper.New()
	v.SetFs(fs)

	opts := []config.LoaderOption{
		config.WithViper(v),
		config.WithName(DefaultFilename),
		config.WithType(DefaultFileExtension),
		config.WithEnvPrefix(DefaultEnvPrefix),
		config.WithEnvKeyReplacer(".", "_"),
	}

	// load opt from filepath if exist
	if filePath != EmptyPath {
		if err := validateFilepath(fs, filePath); err != nil {
			return nil, err // if filepath not valid, returns err
		}
		opts = append(opts, config.WithFile(filePath))
	} else {
		opts = append(opts, config.WithPath(currPath))
	}

	l := config.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}
	cfg.Log.Level = LogLevel(strings.ToUpper(cfg.Log.Level.String()))

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return cfg, nil
}

func validateFilepath(fs afero.Fs, fpath string) error {
	f, err := fs.Stat(fpath)
	if err != nil {
		return err
	}
	if !f.Mode().IsRegular() {
		return fmt.Errorf("%s not a file", fpath)
	}
	return nil
}
