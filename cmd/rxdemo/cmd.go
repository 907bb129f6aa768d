package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxsml/rx"
	"github.com/fxsml/rx/config"
	"github.com/fxsml/rx/internal/fixture"
)

type settings struct {
	// Name labels the observable in log records.
	Name string
	// Fixtures is a YAML file of requests; the built-in set is used when empty.
	Fixtures string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// JSON switches log records to JSON.
	JSON bool
}

func defaultSettings() settings {
	return settings{
		Name:     "requests",
		LogLevel: "info",
	}
}

func newCommand() *cobra.Command {
	var flags settings

	cmd := &cobra.Command{
		Use:          "rxdemo",
		Short:        "Replay mock requests through an observable",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := defaultSettings()
			if err := config.Load("demo", &s); err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("name") {
				s.Name = flags.Name
			}
			if f.Changed("fixtures") {
				s.Fixtures = flags.Fixtures
			}
			if f.Changed("log-level") {
				s.LogLevel = flags.LogLevel
			}
			if f.Changed("json") {
				s.JSON = flags.JSON
			}
			return run(s, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&flags.Name, "name", "", "observable name used in log records")
	cmd.Flags().StringVar(&flags.Fixtures, "fixtures", "", "YAML file with requests (default: built-in mock set)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "write log records as JSON")

	return cmd
}

func run(s settings, out, logOut io.Writer) error {
	logger, err := newLogger(s, logOut)
	if err != nil {
		return err
	}

	requests, err := loadRequests(s.Fixtures)
	if err != nil {
		return err
	}

	sub := rx.From(requests, rx.Config{Name: s.Name, Logger: logger}).
		Subscribe(fixture.Handlers(out))
	sub.Unsubscribe()
	return nil
}

func loadRequests(path string) ([]fixture.Request, error) {
	if path == "" {
		return fixture.Requests(time.Now()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fixture.LoadRequests(f)
}

func newLogger(s settings, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s.LogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if s.JSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
