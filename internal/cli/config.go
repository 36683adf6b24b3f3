package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/idelchi/projstat/internal/projstat"
)

const (
	configBaseName   = "projstat"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "PROJSTAT"

	profileKey      = "profile"
	outputKey       = "output"
	debugKey        = "debug"
	ignoreAddKey    = "ignore.add"
	ignoreRemoveKey = "ignore.remove"
	ignoreClearKey  = "ignore.clear"
	sourceAddKey    = "source.add"
	sourceRemoveKey = "source.remove"
	sourceClearKey  = "source.clear"
	typesKey        = "types"
	typesRemoveKey  = "types_remove"
	serveAddrKey    = "serve.addr"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultProfile       = projstat.ProfileWeb
	defaultOutput        = "auto"
	defaultServeAddr     = "127.0.0.1:8080"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newViper returns a configuration store with defaults, environment lookup and
// the projstat.yaml search path set up. Nothing is read yet.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(profileKey, defaultProfile)
	v.SetDefault(outputKey, defaultOutput)
	v.SetDefault(debugKey, false)
	v.SetDefault(ignoreAddKey, []string{})
	v.SetDefault(ignoreRemoveKey, []string{})
	v.SetDefault(ignoreClearKey, false)
	v.SetDefault(sourceAddKey, []string{})
	v.SetDefault(sourceRemoveKey, []string{})
	v.SetDefault(sourceClearKey, false)
	v.SetDefault(typesKey, map[string][]string{})
	v.SetDefault(typesRemoveKey, []string{})
	v.SetDefault(serveAddrKey, defaultServeAddr)

	v.SetDefault(logFilenameKey, "")
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig loads the configuration file. A missing projstat.yaml in the
// working directory is not an error; a missing explicit file is.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return err
	}

	return nil
}

// loadDotEnv exports the variables of a .env file in the working directory, if any.
// Variables already set in the environment take precedence.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the default slog logger.
//
// Records go to stderr unless log.filename is set, in which case they go to a
// rotated file. The debug key forces the Debug level.
func configureLogger(v *viper.Viper, stderr io.Writer) *slog.Logger {
	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if v.GetBool(debugKey) {
		level = slog.LevelDebug
	}

	writer := stderr
	if filename := strings.TrimSpace(v.GetString(logFilenameKey)); filename != "" {
		writer = &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
	}

	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger
}
