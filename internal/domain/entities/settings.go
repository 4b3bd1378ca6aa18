package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// OutputFormatMuse is the JSON array consumed by the Muse host.
	OutputFormatMuse = "muse"
	// OutputFormatSarif is a SARIF 2.1.0 log.
	OutputFormatSarif = "sarif"

	// ConfigEnvVar names a settings file used when --config is not given.
	ConfigEnvVar = "RUST_ANALYZER_CONFIG"

	defaultManifest = "Cargo.toml"
	defaultLockfile = "Cargo.lock"
	defaultChecker  = "cargo"
)

// Settings is the top-level configuration for the analyzer. It belongs to the
// host running the analyzer, never to the project being analyzed, so it is
// only read from an explicit path.
type Settings struct {
	Manifest string        `yaml:"manifest"` // manifest path, relative to the working directory
	Lockfile string        `yaml:"lockfile"` // lockfile checked by the applicable command
	Checker  CheckerConfig `yaml:"checker"`
}

// CheckerConfig describes how the staleness checker is launched.
type CheckerConfig struct {
	Binary string   `yaml:"binary"` // Executable name or path, ${ENV_VAR} allowed
	Args   []string `yaml:"args"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings matching the Muse analyzer contract:
// Cargo.toml / Cargo.lock in the working directory and `cargo outdated -R --format json`.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest: defaultManifest,
		Lockfile: defaultLockfile,
		Checker: CheckerConfig{
			Binary: defaultChecker,
			Args:   []string{"outdated", "-R", "--format", "json"},
		},
	}
}

// NewSettings reads a configuration file on top of the defaults, expanding
// environment variables in the checker command line.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Checker.Binary = expandEnv(settings.Checker.Binary)
	for i := range settings.Checker.Args {
		settings.Checker.Args[i] = expandEnv(settings.Checker.Args[i])
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings resolves the settings for one invocation. The explicit path
// wins, then the file named by RUST_ANALYZER_CONFIG; with neither, the
// built-in defaults are used. The working directory is never searched.
func LoadSettings(explicitPath string) (*Settings, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		logger.Debug("No config file given, using defaults")
		return DefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Manifest == "" {
		return errors.New("manifest is required")
	}
	if s.Lockfile == "" {
		return errors.New("lockfile is required")
	}
	if s.Checker.Binary == "" {
		return errors.New("checker.binary is required (set inline or via ${ENV_VAR})")
	}
	return nil
}

// ManifestName is the file name reported in findings.
func (s *Settings) ManifestName() string {
	return filepath.Base(s.Manifest)
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
