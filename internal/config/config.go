package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// OutputPath is the directory path where downloaded files will be saved.
	// An empty value means the current working directory.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// UserAgent is the User-Agent header sent with every request.
	// An empty value means the client default.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// EmbedTags indicates whether to write ID3v2 tags to downloaded MP3 previews.
	// Disabled by default so downloaded bytes stay exactly as served.
	EmbedTags bool `mapstructure:"embed_tags" yaml:"embed_tags"`
	// MaxLogBodyLength is the maximum size of request/response dumps in debug logs (e.g., "1MB", "64KB").
	MaxLogBodyLength string `mapstructure:"max_log_body_length" yaml:"max_log_body_length"`
	// TrackFilenameTemplate is the template for naming downloaded track files.
	TrackFilenameTemplate string `mapstructure:"track_filename_template" yaml:"track_filename_template"`
	// AlbumFolderTemplate is the template for naming album folders.
	AlbumFolderTemplate string `mapstructure:"album_folder_template" yaml:"album_folder_template"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedMaxLogBodyLength is the parsed maximum log dump size in bytes.
	ParsedMaxLogBodyLength uint64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".audionetwork-grabber.yaml"

	// DefaultTrackFilenameTemplate is the default template for naming downloaded track files.
	DefaultTrackFilenameTemplate = "{{.trackNumberPad}}. {{.trackTitle}}"

	// DefaultAlbumFolderTemplate is the default template for naming folders for downloaded albums.
	DefaultAlbumFolderTemplate = "{{.releaseYear}} - {{.albumTitle}}"

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultMaxLogBodyLength is the default maximum size (in bytes) for request/response dumps.
	DefaultMaxLogBodyLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing default file is not an error; an explicitly requested file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if isExplicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("output_path", "")
	viper.SetDefault("user_agent", "")
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("embed_tags", false)
	viper.SetDefault("max_log_body_length", "")
	viper.SetDefault("track_filename_template", DefaultTrackFilenameTemplate)
	viper.SetDefault("album_folder_template", DefaultAlbumFolderTemplate)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxLogBodyLength := strings.TrimSpace(cfg.MaxLogBodyLength)
	if maxLogBodyLength != "" && maxLogBodyLength != "0" {
		parsedMaxLogBodyLength, err := humanize.ParseBytes(maxLogBodyLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log body length: %w", err)
		}

		cfg.ParsedMaxLogBodyLength = parsedMaxLogBodyLength
	}

	// Resolve the output path to an absolute path; empty means the current directory.
	outputPath := strings.TrimSpace(cfg.OutputPath)
	if outputPath == "" {
		outputPath = "."
	}

	absoluteOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	cfg.OutputPath = absoluteOutputPath

	return nil
}

// WriteDefaultConfig writes a config file with default values to the given path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file '%s' already exists", path)
	}

	defaults := &Config{
		OutputPath:            "",
		UserAgent:             "",
		LogLevel:              DefaultLogLevel,
		EmbedTags:             false,
		MaxLogBodyLength:      "1MB",
		TrackFilenameTemplate: DefaultTrackFilenameTemplate,
		AlbumFolderTemplate:   DefaultAlbumFolderTemplate,
	}

	contents, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	return os.WriteFile(path, contents, constants.DefaultFilePermissions)
}
