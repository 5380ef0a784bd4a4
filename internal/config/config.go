package config

import (
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// YamlConfigPath is the default per-user configuration file.
var YamlConfigPath = filepath.Join(getXDGConfigPath(runtime.GOOS), "config.yml")

// Config controls which messages lspdump prints and how.
type Config struct {
	// Include restricts output to these methods. Empty means all.
	Include []string `yaml:"include"`
	// Exclude drops these methods from the output. Exclude wins over
	// Include.
	Exclude []string `yaml:"exclude"`
	// MaxPayload truncates printed payloads to this many bytes.
	// Zero means no limit.
	MaxPayload int `yaml:"maxPayload"`
}

// GetConfig loads the file at path, or the default per-user file when
// path is empty. A missing default file yields a zero config.
func GetConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		path = YamlConfigPath
		if !isFileExist(path) {
			return cfg, nil
		}
	}
	if err := cfg.Load(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return xerrors.Errorf("cannot read config, %+v", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return xerrors.Errorf("failed to parse config, %+v", err)
	}
	if c.MaxPayload < 0 {
		return xerrors.New("maxPayload must not be negative")
	}
	return nil
}

// Allowed reports whether messages for method should be printed.
func (c *Config) Allowed(method string) bool {
	for _, m := range c.Exclude {
		if m == method {
			return false
		}
	}
	if len(c.Include) == 0 {
		return true
	}
	for _, m := range c.Include {
		if m == method {
			return true
		}
	}
	return false
}

func isFileExist(fPath string) bool {
	_, err := os.Stat(fPath)
	return err == nil || !os.IsNotExist(err)
}

func getXDGConfigPath(goos string) string {
	var dir string
	switch goos {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "Application Data")
		}
		dir = filepath.Join(dir, "lspdump")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			dir = filepath.Join(os.Getenv("HOME"), ".config")
		}
		dir = filepath.Join(dir, "lspdump")
	}
	return dir
}
