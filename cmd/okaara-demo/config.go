package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the demo shell.
type Config struct {
	AutoRender    bool
	ShortTriggers bool
	Color         bool
	Logging       Logging
	Flags         map[string]string
	Args          []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envAutoRender    = "OKAARA_DEMO_AUTO_RENDER"
	envShortTriggers = "OKAARA_DEMO_SHORT_TRIGGERS"
	envColor         = "OKAARA_DEMO_COLOR"
	envTrace         = "OKAARA_DEMO_TRACE"
	envLogFile       = "OKAARA_DEMO_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("okaara-demo", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	autoRender := fs.Bool("auto-render", envOrBool(env, envAutoRender, false), "re-render the menu after every command")
	shortTriggers := fs.Bool("short-triggers", envOrBool(env, envShortTriggers, false), "register only single-character triggers for the built-in commands")
	color := fs.Bool("color", envOrBool(env, envColor, false), "render menus with the default theme")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		AutoRender:    *autoRender,
		ShortTriggers: *shortTriggers,
		Color:         *color,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"autoRender":    strconv.FormatBool(*autoRender),
			"shortTriggers": strconv.FormatBool(*shortTriggers),
			"color":         strconv.FormatBool(*color),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
