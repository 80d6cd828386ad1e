package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	envPrefix = "PAGESTATE"
	dirPerm   = 0o755
	filePerm  = 0o644
)

// Manager handles configuration loading.
type Manager struct {
	config   *Config
	viper    *viper.Viper
	explicit string
	mu       sync.RWMutex
}

// NewManager creates a configuration manager. When configFile is empty the
// file is looked up in the XDG config directory and the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// PAGESTATE_DATABASE_PATH, PAGESTATE_PROFILE and friends resolve through AutomaticEnv.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PAGESTATE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGESTATE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PAGESTATE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGESTATE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, explicit: configFile}, nil
}

// Override sets key above every other source, like a command-line flag.
func (m *Manager) Override(key string, value any) {
	m.viper.Set(key, value)
}

// Load reads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)
	if err := ensureDatabasePath(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if m.explicit != "" {
		if _, err := os.Stat(m.explicit); err != nil {
			return fmt.Errorf("failed to open config file %s: %w", m.explicit, err)
		}
	}

	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = m.explicit
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	if config.Profile == "" {
		// validation reports the missing profile
		return nil
	}
	dbPath, err := GetProfileDatabaseFile(config.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// Get returns the loaded configuration, or the defaults when Load was never called.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// ConfigFileUsed returns the path of the config file read by Load, or empty.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// WriteDefault writes the default configuration to path without overwriting
// an existing file.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, value := range defaultValues() {
		if key == "database.path" {
			continue
		}
		v.Set(key, value)
	}

	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("config file %s already exists", path)
		}
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return os.Chmod(path, filePerm)
}

// Load is a convenience wrapper creating a Manager and loading it.
func Load(configFile string) (*Config, error) {
	m, err := NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m.Get(), nil
}
