package cmd

import (
	"os"
	"time"

	"github.com/kasuboski/ingestz/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ingestz",
	Short: "ingestz cli",
	Long:  `ingestz submits .torrent files to qBittorrent and lays the downloads out for a media library`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.txt", "config file")
}

const (
	defaultDownloadLimit    = 1024 * 1024
	defaultUploadLimit      = 500 * 1024
	defaultIdentifyAttempts = 10
	defaultIdentifyInterval = time.Second
)

func initConfig() {
	// the default config file is optional, an explicit one that is missing fails on read
	if _, err := os.Stat(cfgFile); err != nil && !rootCmd.PersistentFlags().Changed("config") {
		cfgFile = ""
	}

	viper.SetConfigFile(cfgFile)
	if t := config.ConfigType(cfgFile); t != "" {
		viper.SetConfigType(t)
	}

	config.BindEnv(viper.GetViper())

	viper.SetDefault("qbittorrent.url", "http://localhost:8080")
	viper.SetDefault("qbittorrent.username", "")
	viper.SetDefault("qbittorrent.password", "")

	viper.SetDefault("categories.movie", []string{"movies", "Movies", "MOVIES"})
	viper.SetDefault("categories.tv", []string{"tv", "TV", "Shows", "shows"})

	viper.SetDefault("paths.movie", "D:/Movies")
	viper.SetDefault("paths.tv", "D:/TV")

	viper.SetDefault("limits.download", defaultDownloadLimit)
	viper.SetDefault("limits.upload", defaultUploadLimit)

	viper.SetDefault("checkpoint.backend", "file")
	viper.SetDefault("checkpoint.processed", "processed_torrents.txt")
	viper.SetDefault("checkpoint.failed", "failed_torrents.txt")
	viper.SetDefault("checkpoint.database", "ingestz.sqlite")

	viper.SetDefault("identify.attempts", defaultIdentifyAttempts)
	viper.SetDefault("identify.interval", defaultIdentifyInterval)
}

// loadConfig reads and validates the configuration for a command
func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}
