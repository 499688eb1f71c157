package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileNames are the config files searched for, in order, from the working directory upwards.
var FileNames = []string{"prisma.conf", "prisma.yaml", "prisma.yml"}

const (
	DefaultSchemaPath = "prisma/schema.prisma"
	DefaultOutput     = "db"
)

// Config is the project configuration read from prisma.conf (TOML) or prisma.yaml.
type Config struct {
	Schema     string            `toml:"schema" yaml:"schema"`
	Datasource *DatasourceConfig `toml:"datasource" yaml:"datasource"`
	Generator  *GeneratorConfig  `toml:"generator,omitempty" yaml:"generator,omitempty"`
	Log        []string          `toml:"log,omitempty" yaml:"log,omitempty"`
	Pool       *PoolConfig       `toml:"pool,omitempty" yaml:"pool,omitempty"`

	// Path is the file the config was read from.
	Path string `toml:"-" yaml:"-"`
}

type DatasourceConfig struct {
	// URL may reference the environment as env("DATABASE_URL"), ${DATABASE_URL} or $DATABASE_URL.
	URL      string `toml:"url" yaml:"url"`
	Provider string `toml:"provider,omitempty" yaml:"provider,omitempty"`
}

type GeneratorConfig struct {
	Output  string `toml:"output" yaml:"output"`
	Package string `toml:"package,omitempty" yaml:"package,omitempty"`
}

type PoolConfig struct {
	MaxConns        int32    `toml:"maxConns" yaml:"maxConns"`
	MinConns        int32    `toml:"minConns" yaml:"minConns"`
	MaxConnLifetime Duration `toml:"maxConnLifetime" yaml:"maxConnLifetime"`
	MaxConnIdleTime Duration `toml:"maxConnIdleTime" yaml:"maxConnIdleTime"`
}

// Duration decodes "30s"-style strings from TOML and YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Find walks up from dir looking for one of FileNames.
func Find(dir string) (string, error) {
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("none of %s found", strings.Join(FileNames, ", "))
		}
		dir = parent
	}
}

// Load reads the config at configPath, or searches for one when configPath is empty.
// The nearest .env file is loaded first; variables already set in the process win.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		configPath, err = Find(wd)
		if err != nil {
			return nil, err
		}
	}

	LoadEnv(filepath.Dir(configPath))

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", configPath, err)
	}

	cfg, err := Parse(data, filepath.Ext(configPath))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	cfg.Path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(configPath), err)
	}
	return cfg, nil
}

// Parse decodes data as YAML for .yaml/.yml extensions and as TOML otherwise, then expands env references.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	}
	cfg.expandEnvVars()
	return &cfg, nil
}

// LoadEnv loads the first .env found walking up from dir.
func LoadEnv(dir string) {
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func (c *Config) expandEnvVars() {
	c.Schema = ExpandString(c.Schema)
	if c.Datasource != nil {
		c.Datasource.URL = ExpandString(c.Datasource.URL)
	}
}

var envCall = regexp.MustCompile(`env\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']\s*\)`)

// ExpandString replaces env("VAR"), env('VAR'), ${VAR} and $VAR with their values.
func ExpandString(s string) string {
	s = envCall.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(envCall.FindStringSubmatch(m)[1])
	})
	return os.ExpandEnv(s)
}

// Validate fills defaults and checks required settings.
func (c *Config) Validate() error {
	if c.Schema == "" {
		c.Schema = DefaultSchemaPath
	}
	if c.Generator == nil {
		c.Generator = &GeneratorConfig{}
	}
	if c.Generator.Output == "" {
		c.Generator.Output = DefaultOutput
	}
	if c.Generator.Package == "" {
		c.Generator.Package = filepath.Base(c.Generator.Output)
	}
	if c.Datasource == nil {
		return fmt.Errorf("datasource is required")
	}
	if c.Datasource.URL == "" {
		return fmt.Errorf(`datasource.url is empty (set it or reference env("DATABASE_URL"))`)
	}
	return nil
}

func (c *Config) GetSchemaPath() string {
	if c.Schema != "" {
		return c.resolve(c.Schema)
	}
	return c.resolve(DefaultSchemaPath)
}

func (c *Config) GetOutputPath() string {
	if c.Generator != nil && c.Generator.Output != "" {
		return c.resolve(c.Generator.Output)
	}
	return c.resolve(DefaultOutput)
}

func (c *Config) GetDatabaseURL() string {
	if c.Datasource != nil {
		return c.Datasource.URL
	}
	return ""
}

// resolve makes p relative to the config file's directory.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.Path), p)
}
