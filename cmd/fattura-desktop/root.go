package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"

	"github.com/fatturaanalyzer/fattura-desktop/internal/config"
	"github.com/fatturaanalyzer/fattura-desktop/internal/desktop"
	"github.com/fatturaanalyzer/fattura-desktop/internal/sysinfo"
	"github.com/fatturaanalyzer/fattura-desktop/pkg/logger"
)

// silentError marks an error the command already reported to the user.
type silentError struct {
	err error
}

func (e silentError) Error() string { return e.err.Error() }
func (e silentError) Unwrap() error { return e.err }

// reportError prints err unless it was already shown.
func reportError(w io.Writer, err error) {
	var silent silentError
	if errors.As(err, &silent) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd(assets fs.FS) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "fattura-desktop",
		Short:         "FatturaAnalyzer desktop shell",
		Version:       desktop.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(flags, assets)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath(), "path to desktop.toml")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newProbeCmd(flags))
	root.AddCommand(newInfoCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(flags))
	return root
}

// loadSettings reads the config file and picks the effective log level:
// flag, then config, then the build default. Logs go to w.
func loadSettings(flags *globalFlags, w io.Writer) (config.Config, slog.Level, *slog.Logger) {
	cfg, cfgErr := config.Load(flags.configPath)

	level := slog.LevelInfo
	if desktop.DevBuild {
		level = slog.LevelDebug
	}
	level = logger.ParseLevel(cfg.Log.Level, level)
	level = logger.ParseLevel(flags.logLevel, level)

	lg := logger.New(w, level)
	if cfgErr != nil {
		lg.Warn("using default settings", "path", flags.configPath, "err", cfgErr)
	}
	return cfg, level, lg
}

func runDesktop(flags *globalFlags, assets fs.FS) error {
	cfg, level, lg := loadSettings(flags, os.Stdout)
	lg.Info("starting desktop shell", "version", desktop.Version, "dev", desktop.DevBuild, "health_url", cfg.Backend.HealthURL)

	app := desktop.NewApp(cfg, lg)
	if err := wails.Run(desktop.NewOptions(app, assets, cfg, level)); err != nil {
		lg.Error("error while running application", "err", err)
		return err
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print application and platform information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				App    sysinfo.AppInfo    `json:"app"`
				System sysinfo.SystemInfo `json:"system"`
			}{
				App:    sysinfo.App(desktop.AppName, desktop.Version, desktop.DevBuild),
				System: sysinfo.System(),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", desktop.Version)
		},
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage desktop.toml",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(flags.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.configPath)
			return nil
		},
	})
	return cfgCmd
}
