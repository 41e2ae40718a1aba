package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"levelmap/internal/config"
	"levelmap/internal/geom"
	"levelmap/internal/session"
)

var (
	configPath   string
	refPath      string
	measuredPath string
	demo         bool
)

var rootCmd = &cobra.Command{
	Use:   "levelmap",
	Short: "Slab level deviation from a three-point reference plane",
	Long: `levelmap fits a plane through three surveyed reference points and reports
the vertical deviation of every measured point in millimetres, classified
against a tolerance band. Without a subcommand it opens the terminal map.`,
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&refPath, "ref", "", "reference point file (txt, xyz, csv, geojson, kml)")
	rootCmd.PersistentFlags().StringVar(&measuredPath, "measured", "", "measured point file (txt, xyz, csv, geojson, kml)")
	rootCmd.PersistentFlags().BoolVar(&demo, "demo", false, "load the bundled demo survey")
}

// loadSession builds a session from the config and point flags.
func loadSession() (*config.Config, *session.Session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	s := session.New(cfg.SessionOptions())
	if demo {
		s.LoadDemo()
	}
	if refPath != "" {
		pts, err := geom.LoadPath(refPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading reference points: %w", err)
		}
		s.SetReference(pts)
	}
	if measuredPath != "" {
		pts, err := geom.LoadPath(measuredPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading measured points: %w", err)
		}
		s.SetMeasured(pts)
	}
	return cfg, s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
