package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/gui"
	"github.com/san-kum/gravbox/internal/metrics"
	"github.com/spf13/cobra"
)

// configEnv names an optional yaml file overriding the display defaults.
const configEnv = "GRAVBOX_CONFIG"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "gravbox",
		Short:              "particles falling into a point of gravity",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				printUsage(out)
				return nil
			}
			return run(out)
		},
	}
}

func run(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder(metrics.DefaultHistory)
	if err := gui.Run(cfg, rec); err != nil {
		return err
	}
	return metrics.WriteReport(out, rec.Snapshot())
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv(configEnv)
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Usage: gravbox"))
	fmt.Fprintln(w, dimStyle.Render("takes no arguments"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  spawn a particle\n", keyStyle.Render("click"))
	fmt.Fprintf(w, "  %s  pause / resume\n", keyStyle.Render("space"))
	fmt.Fprintf(w, "  %s      clear the scene\n", keyStyle.Render("r"))
}
