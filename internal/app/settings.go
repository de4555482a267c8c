package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MACROMEAL"

// Settings are the process-level options. Calculator defaults are user data
// and live in the database instead.
type Settings struct {
	DB     DBSettings     `mapstructure:"db"`
	Log    LogConfig      `mapstructure:"log"`
	Server ServerSettings `mapstructure:"server"`
}

type DBSettings struct {
	Path string `mapstructure:"path"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

// LoadSettings merges defaults, an optional settings file and MACROMEAL_*
// environment variables, in increasing priority. A .env file in the working
// directory is loaded first when present. path selects the settings file;
// when empty, macromeal.yaml is looked up in the working directory and the
// user config dir.
func LoadSettings(path string) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if err := setSettingsDefaults(v); err != nil {
		return Settings{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func setSettingsDefaults(v *viper.Viper) error {
	dbPath, err := DefaultDBPath()
	if err != nil {
		return err
	}
	v.SetDefault("db.path", dbPath)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.addr", ":8080")
	return nil
}
