package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Storage  string        `yaml:"storage"` // "memory" or "postgres"
	Pg       Pg            `yaml:"pg"`
	TokenTTL time.Duration `yaml:"token_ttl"` // seconds
	LogLevel string        `yaml:"log_level"`
	LogJSON  bool          `yaml:"log_json"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	PgPassword string `yaml:"pg_password"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) PgPassword() string {
	return c.Private.PgPassword
}

func (c *Config) TokenTTL() time.Duration {
	return c.Public.TokenTTL * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if cfg.Public.Storage == "" {
		cfg.Public.Storage = "memory"
	}
	if cfg.Public.TokenTTL <= 0 {
		panic("token_ttl must be positive")
	}
	if cfg.Private.JwtKey == "" {
		panic("jwt_key must be set")
	}
	return cfg
}
