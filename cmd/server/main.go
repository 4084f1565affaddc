package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-todo-server/internal/config"
	"github.com/jrsteele09/go-todo-server/server"
	"github.com/jrsteele09/go-todo-server/users"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "todo-server",
		Short:         "Multi-user todo list web server",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.ReadFile(v, configFile); err != nil {
				return err
			}
			return run(config.New(v))
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "optional config file (toml, yaml or json)")
	flags.String("port", "", "listen port or host:port (env TODO_PORT)")
	flags.String("env", "", "environment name, DEV enables route logging (env TODO_ENV)")
	flags.String("static-root", "", "directory served for static assets, embedded assets when empty (env TODO_STATIC_ROOT)")
	flags.String("users-file", "", "TOML file with the user profiles (env TODO_USERS_FILE)")
	if err := bindFlags(v, flags, map[string]string{
		"port":        config.KeyPort,
		"env":         config.KeyEnv,
		"static-root": config.KeyStaticRoot,
		"users-file":  config.KeyUsersFile,
	}); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
	}

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func run(c config.Config) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	setupLogging(c.GetEnv())
	displayAppname(c.GetAppName())

	s, err := server.New(c, server.NewInMemoryRepos())
	if err != nil {
		return err
	}
	if err := s.InjectData(loadUsers(c.GetUsersFile())); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- listenAndServe(httpServer)
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitForStopSignal():
	}
	returnError = shutdown(httpServer)
	log.Info().Msg("Server stopped")
	return returnError
}

func setupLogging(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// loadUsers reads the user data file; a missing or broken file leaves the
// server running without users.
func loadUsers(path string) map[string]users.User {
	if path == "" {
		return map[string]users.User{}
	}
	profiles, err := users.LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("No user data loaded")
		return map[string]users.User{}
	}
	return profiles
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
