package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Girder/internal/codes"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "List the IRC:6-2017 vehicle load trains",
	Run:   runVehicles,
}

func init() {
	rootCmd.AddCommand(vehiclesCmd)
}

func runVehicles(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tAXLES\tTOTAL (kN)\tLENGTH (m)\tMIN SPAN (m)")
	for _, name := range codes.VehicleNames() {
		v, err := codes.VehicleByName(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.1f\t%.0f\n",
			v.Class, len(v.Axles), v.TotalLoadKN(), v.TotalLengthM, v.MinRatedSpanM)
	}
	w.Flush()
}
