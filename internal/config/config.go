package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TODO"

type Config interface {
	EnvConfig
	RequestConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetStaticRoot() string
	GetUsersFile() string
}

type mainConfig struct {
	EnvVars
	Request
}

// New wraps v. A nil v gets a fresh instance with defaults and env bindings applied.
func New(v *viper.Viper) Config {
	if v == nil {
		v = NewViper()
	}
	return mainConfig{
		EnvVars: EnvVars{v: v},
		Request: Request{v: v},
	}
}

// NewViper returns a viper instance with the server defaults registered and
// TODO_* environment variables bound to their keys.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(portKey, "8080")
	v.SetDefault(appNameKey, "Go Todo Server")
	v.SetDefault(envKey, "DEV")
	v.SetDefault(staticRootKey, "")
	v.SetDefault(usersFileKey, "./data/users.toml")
	v.SetDefault(maxBodyBytesKey, int64(1<<20))
	return v
}

// ReadFile merges a config file (any format viper understands) into v.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("[config ReadFile] failed to read %s: %w", path, err)
	}
	return nil
}
