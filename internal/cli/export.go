package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"freight-rate-watch/internal/app"
)

var (
	exportVessel    string
	exportOrigin    string
	exportDest      string
	exportDays      int
	exportCSVPath   string
	exportPNGPath   string
	exportMaxPoints int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one route's rate history as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportVessel == "" || exportOrigin == "" || exportDest == "" {
			return fmt.Errorf("--vessel, --origin, and --dest are required")
		}
		opts := app.ExportOptions{
			Vessel:    exportVessel,
			Origin:    exportOrigin,
			Dest:      exportDest,
			Days:      exportDays,
			CSVPath:   exportCSVPath,
			PNGPath:   exportPNGPath,
			MaxPoints: exportMaxPoints,
		}
		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportVessel, "vessel", "", "Vessel class (e.g. panamax)")
	exportCmd.Flags().StringVar(&exportOrigin, "origin", "", "Origin region (free text, resolved like bulletin text)")
	exportCmd.Flags().StringVar(&exportDest, "dest", "", "Destination region (free text, resolved like bulletin text)")
	exportCmd.Flags().IntVar(&exportDays, "days", 0, "History window in days (defaults to the read lookback)")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().IntVar(&exportMaxPoints, "max-points", 0, "Maximum data points to export (defaults to config)")
}
