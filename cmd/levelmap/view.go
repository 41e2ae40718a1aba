package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"levelmap/internal/tui"
)

var logPath string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive terminal map",
	RunE:  runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to this file")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadSession()
	if err != nil {
		return err
	}
	// stdout belongs to the renderer while the program runs
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "levelmap")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting: %d reference, %d measured points", len(s.Reference()), len(s.Measured()))

	m := tui.New(cfg, s)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
	return nil
}
