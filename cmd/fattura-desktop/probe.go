package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fatturaanalyzer/fattura-desktop/internal/backend"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newProbeCmd(flags *globalFlags) *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check the backend health endpoint without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _ := loadSettings(flags, cmd.ErrOrStderr())
			if url == "" {
				url = cfg.Backend.HealthURL
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			p := backend.NewProber(url)
			start := time.Now()
			msg, err := p.Probe(ctx)
			elapsed := dimStyle.Render(fmt.Sprintf("(%s, %s)", p.URL(), time.Since(start).Round(time.Millisecond)))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), failStyle.Render("✗ "+err.Error()), elapsed)
				return silentError{err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓ "+msg), elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "health endpoint (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long (0 waits indefinitely)")
	return cmd
}
