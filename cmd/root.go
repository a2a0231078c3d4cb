package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sparkle/internal/config"
	"github.com/abhisek/sparkle/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sparkle",
	Short: "Sparkling text in your terminal",
	Long:  "Sparkle — a terminal landing page that draws a label inside a field of pulsing stars.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// Resolved by setup before any command runs.
var (
	cfg     config.Config
	cfgPath string
	logger  *zap.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/sparkle/config.yaml)")
	flags.String("text", "", "Label drawn inside the sparkles (overrides SPARKLE_TEXT)")
	flags.Int("count", 0, "Number of sparkles (overrides SPARKLE_COUNT)")
	flags.String("first-color", "", "First sparkle color, #rgb or #rrggbb")
	flags.String("second-color", "", "Second sparkle color, #rgb or #rrggbb")
	flags.String("class", "", "Label style: title, subtitle, body, hint, label")
	flags.String("log-file", "", "Write JSON logs to this file")
	flags.BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.Flags().Bool("skip-welcome", false, "Open the landing page directly")
	rootCmd.Flags().Bool("watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the configuration and builds the logger.
func setup(cmd *cobra.Command) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	c, err := resolve(cmd, path)
	if err != nil {
		return err
	}

	l, err := logging.New(c.Logging.File, c.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	cfg, cfgPath, logger = c, path, l
	logger.Debug("config resolved",
		zap.String("path", path),
		zap.Int("count", cfg.Count),
		zap.String("class", cfg.Class))
	return nil
}

func configPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// resolve layers flag > env > file > default and validates the result.
func resolve(cmd *cobra.Command, path string) (config.Config, error) {
	c, err := config.Load(path)
	if err != nil {
		return c, err
	}
	return overlay(cmd, c)
}

// overlay applies env and flags on top of a file config.
func overlay(cmd *cobra.Command, c config.Config) (config.Config, error) {
	c, err := config.ApplyEnv(c)
	if err != nil {
		return c, err
	}
	c = applyFlags(cmd, c)
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// applyFlags overrides c with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, c config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("text") {
		c.Text, _ = flags.GetString("text")
	}
	if flags.Changed("count") {
		c.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("first-color") {
		c.Colors.First, _ = flags.GetString("first-color")
	}
	if flags.Changed("second-color") {
		c.Colors.Second, _ = flags.GetString("second-color")
	}
	if flags.Changed("class") {
		c.Class, _ = flags.GetString("class")
	}
	if flags.Changed("log-file") {
		c.Logging.File, _ = flags.GetString("log-file")
	}
	if v, _ := flags.GetBool("verbose"); v {
		c.Logging.Level = "debug"
	}
	return c
}
