package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the POS processes need. Values come from
// defaults, then an optional config.yaml, then environment variables
// (strongest). A .env file is loaded first when present.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	DB       DBConfig       `yaml:"database"`
	Telegram TelegramConfig `yaml:"telegram"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Report   ReportConfig   `yaml:"report"`

	// MetricsAddr enables the Prometheus listener when non-empty,
	// e.g. ":9090".
	MetricsAddr string `yaml:"metrics_addr"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // "sqlite" (default) or "postgres"
	SQLitePath string `yaml:"sqlite_path"`
}

// DBConfig is the PostgreSQL connection configuration.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// URL returns a connection URL for pgx.
func (c DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// TelegramConfig configures the operator bot.
type TelegramConfig struct {
	Token string `yaml:"token"`
	// AdminIDs are the Telegram user ids allowed to operate the POS.
	// Empty means no restriction (single-terminal installs).
	AdminIDs []int64 `yaml:"admin_ids"`
}

// SMTPConfig configures report delivery by email.
type SMTPConfig struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	Recipients []string `yaml:"recipients"`
}

// ReportConfig configures the file export collaborator.
type ReportConfig struct {
	ExportDir string `yaml:"export_dir"`
}

// Load assembles the configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			Backend:    "sqlite",
			SQLitePath: "data/pos.db",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "restaurant",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Report: ReportConfig{ExportDir: "."},
	}

	if err := cfg.applyFile(getEnv("CONFIG_FILE", "config.yaml")); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile overlays values from a YAML file; a missing file is fine.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Storage.Backend = getEnv("STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.SQLitePath = getEnv("SQLITE_PATH", c.Storage.SQLitePath)

	c.DB.Host = getEnv("DB_HOST", c.DB.Host)
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.DB.Port = port
	}
	c.DB.User = getEnv("DB_USER", c.DB.User)
	c.DB.Password = getEnv("DB_PASSWORD", c.DB.Password)
	c.DB.Database = getEnv("DB_NAME", c.DB.Database)

	c.Telegram.Token = getEnv("TOKEN", c.Telegram.Token)
	if v := os.Getenv("ADMIN_IDS"); v != "" {
		ids, err := parseIDList(v)
		if err != nil {
			return fmt.Errorf("invalid ADMIN_IDS %q: %w", v, err)
		}
		c.Telegram.AdminIDs = ids
	}

	c.SMTP.Host = getEnv("SMTP_HOST", c.SMTP.Host)
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		c.SMTP.Port = port
	}
	c.SMTP.Username = getEnv("SMTP_USERNAME", c.SMTP.Username)
	c.SMTP.Password = getEnv("SMTP_PASSWORD", c.SMTP.Password)
	if v := os.Getenv("REPORT_RECIPIENTS"); v != "" {
		c.SMTP.Recipients = splitList(v)
	}

	c.Report.ExportDir = getEnv("REPORT_EXPORT_DIR", c.Report.ExportDir)
	c.MetricsAddr = getEnv("METRICS_ADDR", c.MetricsAddr)
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIDList(s string) ([]int64, error) {
	var ids []int64
	for _, part := range splitList(s) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
