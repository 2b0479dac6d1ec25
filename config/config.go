package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	QBittorrent QBittorrent `json:"qbittorrent" yaml:"qbittorrent" mapstructure:"qbittorrent"`
	Categories  Categories  `json:"categories" yaml:"categories" mapstructure:"categories"`
	Paths       Paths       `json:"paths" yaml:"paths" mapstructure:"paths"`
	Limits      Limits      `json:"limits" yaml:"limits" mapstructure:"limits"`
	Checkpoint  Checkpoint  `json:"checkpoint" yaml:"checkpoint" mapstructure:"checkpoint"`
	Identify    Identify    `json:"identify" yaml:"identify" mapstructure:"identify"`
}

type QBittorrent struct {
	URL      string `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`
	Username string `json:"username" yaml:"username" mapstructure:"username"`
	Password string `json:"password" yaml:"password" mapstructure:"password"`
}

// Categories are ordered preferences, the first one known to qBittorrent is used
type Categories struct {
	Movie []string `json:"movie" yaml:"movie" mapstructure:"movie" validate:"dive,required"`
	TV    []string `json:"tv" yaml:"tv" mapstructure:"tv" validate:"dive,required"`
}

// Paths are the save paths used when no category matches
type Paths struct {
	Movie string `json:"movie" yaml:"movie" mapstructure:"movie" validate:"required"`
	TV    string `json:"tv" yaml:"tv" mapstructure:"tv" validate:"required"`
}

// Limits are in bytes per second, 0 is unlimited
type Limits struct {
	Download int64 `json:"download" yaml:"download" mapstructure:"download" validate:"gte=0"`
	Upload   int64 `json:"upload" yaml:"upload" mapstructure:"upload" validate:"gte=0"`
}

type Checkpoint struct {
	Backend   string `json:"backend" yaml:"backend" mapstructure:"backend" validate:"oneof=file sqlite"`
	Processed string `json:"processed" yaml:"processed" mapstructure:"processed" validate:"required"`
	Failed    string `json:"failed" yaml:"failed" mapstructure:"failed" validate:"required"`
	Database  string `json:"database" yaml:"database" mapstructure:"database" validate:"required_if=Backend sqlite"`
}

// Identify bounds the wait for a submitted torrent to show up
type Identify struct {
	Attempts int           `json:"attempts" yaml:"attempts" mapstructure:"attempts" validate:"gte=1"`
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval" validate:"gt=0"`
}

// EnvPrefix is prepended to every environment override, e.g. INGESTZ_QBITTORRENT_URL
const EnvPrefix = "INGESTZ"

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "")

// BindEnv makes every known key overridable from the environment
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
}

// ErrRenamedKey is returned when a config file still uses the flat keys of the old config.txt format
var ErrRenamedKey = errors.New("renamed config key")

// renamedKeys maps the flat config.txt keys to their current names
var renamedKeys = map[string]string{
	"qb_url":        "qbittorrent.url",
	"qb_user":       "qbittorrent.username",
	"qb_pass":       "qbittorrent.password",
	"download_path": "paths.movie",
	"categories":    "categories.movie",
	"dl_limit":      "limits.download",
	"ul_limit":      "limits.upload",
	"processed":     "checkpoint.processed",
	"failed":        "checkpoint.failed",
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
	InConfig(key string) bool
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}

		err = checkRenamedKeys(cu)
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	c.Categories.Movie = splitList(c.Categories.Movie)
	c.Categories.TV = splitList(c.Categories.TV)

	return c, nil
}

// checkRenamedKeys fails on any old flat key in the config file instead of silently ignoring it.
// A plain "categories" value collides with the nested categories.movie and categories.tv keys.
func checkRenamedKeys(cu ConfigUnmarshaler) error {
	var found []string
	for old, current := range renamedKeys {
		if !cu.InConfig(old) {
			continue
		}
		if old == "categories" && (cu.InConfig("categories.movie") || cu.InConfig("categories.tv")) {
			continue
		}
		found = append(found, fmt.Sprintf("%s (use %s)", old, current))
	}

	if len(found) == 0 {
		return nil
	}

	slices.Sort(found)
	return fmt.Errorf("%w: %s", ErrRenamedKey, strings.Join(found, ", "))
}

// Validate checks the configuration for missing or out of range values
func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ConfigType returns the viper config type for a config file. Plain text
// files are key=value properties, anything else is detected from the extension.
func ConfigType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".properties", ".conf":
		return "properties"
	default:
		return ""
	}
}

// splitList trims entries and splits any that still hold comma separated values
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
