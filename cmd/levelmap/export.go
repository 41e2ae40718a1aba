package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"levelmap/internal/export"
	"levelmap/internal/session"
)

var (
	formatFlag string
	outputFlag string
	autoFlag   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the deviation map as SVG, PNG or GeoJSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "svg, png or geojson (default from the output extension)")
	exportCmd.Flags().StringVarP(&outputFlag, "output", "o", "levelmap.svg", "output file, - for stdout")
	exportCmd.Flags().BoolVar(&autoFlag, "outline", false, "connect the reference points into a closed outline")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, s, err := loadSession()
	if err != nil {
		return err
	}
	if autoFlag {
		s.AutoDraw()
	}
	format := strings.ToLower(formatFlag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputFlag)), ".")
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputFlag != "-" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := write(w, s, format); err != nil {
		return err
	}
	if outputFlag != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outputFlag)
	}
	return nil
}

func write(w io.Writer, s *session.Session, format string) error {
	switch format {
	case "svg":
		return export.NewMapRenderer(s).RenderToSVG(w)
	case "png":
		return export.NewMapRenderer(s).RenderToPNG(w)
	case "geojson", "json":
		return export.WriteGeoJSON(w, s)
	}
	return fmt.Errorf("unknown export format %q", format)
}
