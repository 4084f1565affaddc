package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	portKey       = "port"
	appNameKey    = "app_name"
	envKey        = "env"
	staticRootKey = "static_root"
	usersFileKey  = "users_file"
)

// Keys exposed so the CLI can bind flags onto them.
const (
	KeyPort       = portKey
	KeyAppName    = appNameKey
	KeyEnv        = envKey
	KeyStaticRoot = staticRootKey
	KeyUsersFile  = usersFileKey
)

type EnvVars struct {
	v *viper.Viper
}

var _ EnvConfig = EnvVars{}

// GetPort returns the listen address in ":port" form.
func (e EnvVars) GetPort() string {
	port := strings.TrimSpace(e.v.GetString(portKey))
	if port == "" {
		port = "8080"
	}
	if port[0] != ':' && !strings.Contains(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.v.GetString(appNameKey)
}

func (e EnvVars) GetEnv() string {
	env := e.v.GetString(envKey)
	if env == "" {
		return "DEV"
	}
	return strings.ToUpper(env)
}

// GetStaticRoot returns the directory static assets are served from.
// Empty means the embedded assets.
func (e EnvVars) GetStaticRoot() string {
	return e.v.GetString(staticRootKey)
}

func (e EnvVars) GetUsersFile() string {
	return e.v.GetString(usersFileKey)
}
