package dupmirror

import (
	"fmt"
	"strings"

	"github.com/go-ini/ini"
)

// Config represents the dupmirror configuration
type Config struct {
	configPath string
	ini        *ini.File
}

// CompareConfig represents equivalence strategy configuration
type CompareConfig struct {
	Strategy string // Default strategy code: n, s or h
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default string // Default hash algorithm
	Buffer  string // Read block size, e.g. "64KiB"
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // Default verbose level (0=quiet, 1=basic, 2=detailed, 3=trace)
	Debug string // Default debug flags (comma-separated)
}

// ScanConfig represents walk behaviour
type ScanConfig struct {
	SkipUnreadable bool // Log and skip files that fail to hash instead of aborting
}

// RegistryConfig represents duplicate registry behaviour
type RegistryConfig struct {
	Index bool // Look groups up through the key index instead of a linear scan
}

// AllConfig represents all configuration options
type AllConfig struct {
	Compare  *CompareConfig
	Hash     *HashConfig
	Verbose  *VerboseConfig
	Scan     *ScanConfig
	Registry *RegistryConfig
}

// DefaultConfig returns a configuration holding only built-in defaults.
// Nothing is written to disk.
func DefaultConfig() *Config {
	cfg := &Config{ini: ini.Empty()}
	// setDefaults only fails on invalid section names, which are constants here
	_ = cfg.setDefaults()
	return cfg
}

// LoadConfig loads configuration from an INI file. An empty path returns
// DefaultConfig. Keys missing from the file fall back to the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{configPath: configPath, ini: iniFile}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// setDefaults sets default configuration values
func (c *Config) setDefaults() error {
	defaults := []struct {
		section, key, value string
	}{
		{"compare", "strategy", DefaultStrategyCode},
		{"filehash", "default", DefaultHashAlgorithm},
		{"filehash", "buffer", "64KiB"},
		{"verbose", "level", "0"},
		{"verbose", "debug", ""},
		{"scan", "skip_unreadable", "false"},
		{"registry", "index", "true"},
	}

	for _, d := range defaults {
		section, err := c.ini.NewSection(d.section)
		if err != nil {
			return fmt.Errorf("failed to create %s section: %w", d.section, err)
		}
		if _, err := section.NewKey(d.key, d.value); err != nil {
			return fmt.Errorf("failed to set %s.%s: %w", d.section, d.key, err)
		}
	}

	return nil
}

// Path returns the file the config was loaded from, or "" for defaults
func (c *Config) Path() string {
	return c.configPath
}

// GetCompareConfig returns the compare configuration
func (c *Config) GetCompareConfig() *CompareConfig {
	compareConfig := &CompareConfig{
		Strategy: DefaultStrategyCode, // fallback default
	}

	if c.ini.HasSection("compare") {
		section := c.ini.Section("compare")
		if section.HasKey("strategy") {
			compareConfig.Strategy = strings.TrimSpace(section.Key("strategy").String())
		}
	}

	return compareConfig
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	hashConfig := &HashConfig{
		Default: DefaultHashAlgorithm, // fallback default
		Buffer:  "64KiB",              // fallback default
	}

	if c.ini.HasSection("filehash") {
		section := c.ini.Section("filehash")
		if section.HasKey("default") {
			hashConfig.Default = section.Key("default").String()
		}
		if section.HasKey("buffer") {
			if buffer := section.Key("buffer").String(); buffer != "" {
				hashConfig.Buffer = buffer
			}
		}
	}

	return hashConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{
		Level: 0,  // fallback default
		Debug: "", // fallback default
	}

	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}

	return verboseConfig
}

// GetScanConfig returns the scan configuration
func (c *Config) GetScanConfig() *ScanConfig {
	scanConfig := &ScanConfig{}

	if c.ini.HasSection("scan") {
		section := c.ini.Section("scan")
		if section.HasKey("skip_unreadable") {
			if skip, err := section.Key("skip_unreadable").Bool(); err == nil {
				scanConfig.SkipUnreadable = skip
			}
		}
	}

	return scanConfig
}

// GetRegistryConfig returns the registry configuration
func (c *Config) GetRegistryConfig() *RegistryConfig {
	registryConfig := &RegistryConfig{
		Index: true, // fallback default
	}

	if c.ini.HasSection("registry") {
		section := c.ini.Section("registry")
		if section.HasKey("index") {
			if index, err := section.Key("index").Bool(); err == nil {
				registryConfig.Index = index
			}
		}
	}

	return registryConfig
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Compare:  c.GetCompareConfig(),
		Hash:     c.GetHashConfig(),
		Verbose:  c.GetVerboseConfig(),
		Scan:     c.GetScanConfig(),
		Registry: c.GetRegistryConfig(),
	}
}

// ApplyOverrides applies command-line overrides to the configuration
// Accepts strings like "strategy:h", "default:sha256", "buffer:1MiB", "level:2", "skip_unreadable:true"
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "strategy":
			c.ini.Section("compare").Key("strategy").SetValue(value)
		case "default":
			c.ini.Section("filehash").Key("default").SetValue(value)
		case "buffer":
			c.ini.Section("filehash").Key("buffer").SetValue(value)
		case "level":
			c.ini.Section("verbose").Key("level").SetValue(value)
		case "debug":
			c.ini.Section("verbose").Key("debug").SetValue(value)
		case "skip_unreadable":
			c.ini.Section("scan").Key("skip_unreadable").SetValue(value)
		case "index":
			c.ini.Section("registry").Key("index").SetValue(value)
		default:
			return fmt.Errorf("unsupported override key '%s' (supported: strategy, default, buffer, level, debug, skip_unreadable, index)", key)
		}
	}

	return c.Validate()
}

// Validate checks every configured value
func (c *Config) Validate() error {
	if err := c.validateTyped(); err != nil {
		return err
	}

	all := c.GetAllConfig()

	if err := ValidateStrategyCode(all.Compare.Strategy); err != nil {
		return err
	}
	if err := ValidateHashAlgorithm(all.Hash.Default); err != nil {
		return err
	}
	if _, err := ParseHumanSize(all.Hash.Buffer); err != nil {
		return fmt.Errorf("invalid hash buffer: %w", err)
	}
	if err := ValidateVerboseLevel(all.Verbose.Level); err != nil {
		return err
	}
	return nil
}

// validateTyped rejects int and bool keys that do not parse. The Get*Config
// accessors fall back to defaults for such keys, so they are caught here.
func (c *Config) validateTyped() error {
	if key, ok := c.lookupKey("verbose", "level"); ok {
		if _, err := key.Int(); err != nil {
			return fmt.Errorf("invalid verbose level %q: %w", key.String(), err)
		}
	}
	bools := []struct{ section, key string }{
		{"scan", "skip_unreadable"},
		{"registry", "index"},
	}
	for _, b := range bools {
		key, ok := c.lookupKey(b.section, b.key)
		if !ok {
			continue
		}
		if _, err := key.Bool(); err != nil {
			return fmt.Errorf("invalid %s.%s %q: %w", b.section, b.key, key.String(), err)
		}
	}
	return nil
}

func (c *Config) lookupKey(section, key string) (*ini.Key, bool) {
	if !c.ini.HasSection(section) {
		return nil, false
	}
	s := c.ini.Section(section)
	if !s.HasKey(key) {
		return nil, false
	}
	return s.Key(key), true
}

// HashBufferSize returns the configured read block size in bytes
func (c *Config) HashBufferSize() (int, error) {
	size, err := ParseHumanSize(c.GetHashConfig().Buffer)
	if err != nil {
		return 0, err
	}
	if size <= 0 {
		return 0, fmt.Errorf("hash buffer must be positive, got %d", size)
	}
	return size, nil
}

// ValidateStrategyCode validates a compare strategy code
func ValidateStrategyCode(code string) error {
	if _, err := ParseStrategy(code); err != nil {
		return fmt.Errorf("unsupported compare strategy: %s (supported: %s)", code, strings.Join(AllowedStrategyCodes, ", "))
	}
	return nil
}

// ValidateHashAlgorithm validates that a hash algorithm is supported
func ValidateHashAlgorithm(algorithm string) error {
	switch strings.ToLower(algorithm) {
	case "sha1", "sha256", "sha512":
		return nil
	default:
		return fmt.Errorf("unsupported hash algorithm: %s (supported: sha1, sha256, sha512)", algorithm)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}
