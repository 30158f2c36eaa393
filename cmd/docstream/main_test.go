package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/inklab/docstream/config"
	"github.com/inklab/docstream/core"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: level,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error { return nil },
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error { return nil },
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}

		err := app.Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestNewLLMProviderRequiresLLMConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Extraction.Provider = "llm"
	cfg.Extraction.LLM = nil

	_, err := newLLMProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm configuration block")
}

func TestParseID(t *testing.T) {
	newContext := func(args ...string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		require.NoError(t, set.Parse(args))
		return cli.NewContext(nil, set, nil)
	}

	t.Run("valid id", func(t *testing.T) {
		id, err := parseID(newContext("42"))
		require.NoError(t, err)
		assert.Equal(t, core.ID(42), id)
	})

	t.Run("no argument", func(t *testing.T) {
		_, err := parseID(newContext())
		assert.Error(t, err)
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := parseID(newContext("1", "2"))
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseID(newContext("abc"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid document id")
	})
}
