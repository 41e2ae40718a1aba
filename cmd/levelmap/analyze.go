package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"levelmap/internal/deviation"
	"levelmap/internal/session"
)

var (
	modeFlag   string
	upperFlag  float64
	lowerFlag  float64
	filterFlag string
	sortFlag   string
	descFlag   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the plane, averages and the deviation table",
	Long:  "Run the deviation pipeline without the terminal UI and print the result as tab-separated rows.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&modeFlag, "mode", "", "tolerance centre: average or plane (default from config)")
	analyzeCmd.Flags().Float64Var(&upperFlag, "upper", -1, "upper tolerance in mm (default from config)")
	analyzeCmd.Flags().Float64Var(&lowerFlag, "lower", -1, "lower tolerance in mm (default from config)")
	analyzeCmd.Flags().StringVar(&filterFlag, "filter", "all", "all, above, within or below")
	analyzeCmd.Flags().StringVar(&sortFlag, "sort", "", "id, x, y, z, deviation or status")
	analyzeCmd.Flags().BoolVar(&descFlag, "desc", false, "sort descending")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_, s, err := loadSession()
	if err != nil {
		return err
	}
	if err := applyAnalyzeFlags(s); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Plane: %s\n", s.PlaneText())
	if _, err := s.Plane(); err != nil {
		return nil
	}
	for _, r := range s.Rejected() {
		fmt.Fprintf(os.Stderr, "rejected %s: %v\n", r.ID, r.Err)
	}
	if !s.HasResults() {
		fmt.Fprintln(out, "No measured points.")
		return nil
	}
	if mean, absMean, ok := s.Averages(); ok {
		fmt.Fprintf(out, "Average: %d mm  Absolute average: %d mm\n", int(math.Round(mean)), int(math.Round(absMean)))
	}
	tol := s.Tolerance()
	c := s.Counts()
	fmt.Fprintf(out, "Tolerance: +%g / -%g mm relative to %s\n", tol.Upper, tol.Lower, tol.Mode)
	fmt.Fprintf(out, "Points: %d  above: %d  within: %d  below: %d\n\n", c.Total, c.Above, c.Within(), c.Below)
	if err := deviation.WriteTSV(out, s.Rows()); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

func applyAnalyzeFlags(s *session.Session) error {
	tol := s.Tolerance()
	if modeFlag != "" {
		mode, err := deviation.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		tol.Mode = mode
	}
	if upperFlag >= 0 {
		tol.Upper = upperFlag
	}
	if lowerFlag >= 0 {
		tol.Lower = lowerFlag
	}
	if err := s.SetTolerance(tol); err != nil {
		return err
	}

	switch filterFlag {
	case "", "all":
		s.SetFilter(deviation.All)
	case "above":
		s.SetFilter(deviation.OnlyAbove)
	case "within":
		s.SetFilter(deviation.OnlyWithin)
	case "below":
		s.SetFilter(deviation.OnlyBelow)
	default:
		return fmt.Errorf("unknown filter %q", filterFlag)
	}

	if sortFlag != "" {
		key := deviation.SortKey(sortFlag)
		valid := false
		for _, k := range deviation.SortKeys {
			valid = valid || k == key
		}
		if !valid {
			return fmt.Errorf("unknown sort column %q", sortFlag)
		}
		s.RequestSort(key)
		if descFlag {
			s.RequestSort(key)
		}
	}
	return nil
}
