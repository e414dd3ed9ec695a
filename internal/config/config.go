package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const devSecretKey = "clave_dev_por_defecto"

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Admin    *AdminConfig    `mapstructure:"admin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Images   *ImagesConfig   `mapstructure:"images"`
	Publish  *PublishConfig  `mapstructure:"publish"`
	Log      *LogConfig      `mapstructure:"log"`
}

type APIConfig struct {
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	Environment        string        `mapstructure:"environment"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	SecretKey          string        `mapstructure:"secret_key"`
	SessionTTL         time.Duration `mapstructure:"session_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type DatabaseConfig struct {
	URL        string `mapstructure:"url"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type ImagesConfig struct {
	UploadDir        string        `mapstructure:"upload_dir"`
	MaxUploadBytes   int64         `mapstructure:"max_upload_bytes"`
	UploadThingToken string        `mapstructure:"uploadthing_token"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type PublishConfig struct {
	Owner      string        `mapstructure:"owner"`
	Repo       string        `mapstructure:"repo"`
	Token      string        `mapstructure:"token"`
	EventType  string        `mapstructure:"event_type"`
	APIBaseURL string        `mapstructure:"api_base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// envBindings keeps the variable names the deployment already uses.
var envBindings = map[string]string{
	"api.port":                 "PORT",
	"api.environment":          "APP_ENV",
	"api.secret_key":           "SECRET_KEY",
	"gin.mode":                 "GIN_MODE",
	"admin.username":           "ADMIN_USER",
	"admin.password":           "ADMIN_PASS",
	"database.url":             "DATABASE_URL",
	"images.uploadthing_token": "UPLOADTHING_TOKEN",
	"publish.owner":            "GITHUB_OWNER",
	"publish.repo":             "GITHUB_REPO",
	"publish.token":            "GITHUB_TOKEN",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.session_ttl", 24*time.Hour)
	v.SetDefault("gin.mode", "release")
	v.SetDefault("database.sqlite_path", "database.db")
	v.SetDefault("images.upload_dir", "static/uploads")
	v.SetDefault("images.max_upload_bytes", 5*1024*1024)
	v.SetDefault("images.timeout", 30*time.Second)
	v.SetDefault("publish.event_type", "rebuild-site")
	v.SetDefault("publish.api_base_url", "https://api.github.com")
	v.SetDefault("publish.timeout", 15*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 7)
}

// Load reads the yaml file at path, lets environment variables override it
// and returns the resulting configuration. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("v.BindEnv -> %w", err)
		}
	}

	found := true
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
		found = false
	}

	conf, err := unmarshal(v)
	if err != nil {
		return nil, err
	}

	if found {
		v.OnConfigChange(func(e fsnotify.Event) {
			zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
			if onLogLevelChange != nil {
				onLogLevelChange(v.GetString("log.level"))
			}
		})
		v.WatchConfig()
	}

	return conf, nil
}

// onLogLevelChange is set by the logger package through WatchLogLevel.
var onLogLevelChange func(level string)

// WatchLogLevel registers fn to be called with the new log level whenever the
// config file changes on disk.
func WatchLogLevel(fn func(level string)) {
	onLogLevelChange = fn
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{
		API:      &APIConfig{},
		Gin:      &GinConfig{},
		Admin:    &AdminConfig{},
		Database: &DatabaseConfig{},
		Images:   &ImagesConfig{},
		Publish:  &PublishConfig{},
		Log:      &LogConfig{},
	}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API.SecretKey == "" {
		conf.API.SecretKey = devSecretKey
	}

	return conf, nil
}

// UsesDevSecret reports whether no session secret was configured.
func (c *AppConfig) UsesDevSecret() bool {
	return c.API.SecretKey == devSecretKey
}
