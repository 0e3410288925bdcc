package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seqsense/vkeyboard/keyboard"
	"github.com/seqsense/vkeyboard/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logPath    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "vkeyboard-tui",
		Short: "On-screen keyboard in the terminal",
		Long: `Draws the virtual keyboard in the terminal. Click keys with the mouse
to type; the typed text is printed when the program exits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := keyboard.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = keyboard.LoadConfig(configPath); err != nil {
					return err
				}
			}

			logger := slog.New(slog.DiscardHandler)
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				level := slog.LevelInfo
				if debug {
					level = slog.LevelDebug
				}
				logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
			}

			m, err := tui.New(cfg, logger)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Text())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "keyboard config file (YAML)")
	cmd.Flags().StringVar(&logPath, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")

	return cmd
}
