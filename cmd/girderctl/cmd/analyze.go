package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Girder/internal/calc/girder"
)

var (
	analyzeInput  string
	analyzeJSON   string
	analyzeSolver string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a girder verification from an input file",
	Long: `Run the full verification pipeline for one bridge described
in a YAML or JSON input file.

Example input (YAML):

  bridge: NH-44 crossing
  span_mm: 30000
  num_girders: 2
  girder_spacing_mm: 3000
  steel_grade: E250A
  load_class: CLASS_A

Examples:
  girderctl analyze --input bridge.yaml
  girderctl analyze --input bridge.yaml --json result.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input file, YAML or JSON [required]")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "Write the full result as JSON to this path")
	analyzeCmd.Flags().StringVar(&analyzeSolver, "solver", "", "Override the solver (native, grillage)")

	analyzeCmd.MarkFlagRequired("input")
}

// loadInput reads a YAML or JSON input file. YAML goes through a JSON
// round trip so both formats share the struct tags.
func loadInput(path string) (girder.Input, error) {
	var in girder.Input
	data, err := os.ReadFile(path)
	if err != nil {
		return in, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return in, fmt.Errorf("parse %s: %w", path, err)
		}
		data, err = json.Marshal(raw)
		if err != nil {
			return in, err
		}
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input, err := loadInput(analyzeInput)
	if err != nil {
		return err
	}
	if analyzeSolver != "" {
		input.Solver = analyzeSolver
	}

	res, err := girder.Calculate(context.Background(), input)
	if err != nil {
		return err
	}

	printResult(res)

	if analyzeJSON != "" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzeJSON, data, 0644); err != nil {
			return err
		}
		fmt.Printf("\nFull result written to %s\n", analyzeJSON)
	}
	return nil
}

func printResult(res girder.Result) {
	fmt.Println()
	fmt.Println("PLATE GIRDER VERIFICATION")
	fmt.Println()

	g := res.Geometry
	fmt.Printf("Span %.1f m, %d girders @ %.0f mm, %s, %s\n",
		res.Input.SpanMM/1000, res.Input.NumGirders, res.Input.GirderSpacingMM,
		res.Input.SteelGrade, res.Input.LoadClass)
	fmt.Printf("Web %.0f x %.0f, flanges %.0f x %.0f (%s sizing), class %s\n",
		g.WebDepth, g.WebThickness, g.FlangeWidth, g.FlangeThickness,
		res.SizingMethod, res.Section.Class)
	fmt.Printf("Factored M = %.1f kNm (%s), V = %.1f kN (%s)\n",
		res.Demand.MomentKNM, res.Demand.MomentCombination,
		res.Demand.ShearKN, res.Demand.ShearCombination)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHECK\tCLAUSE\tDEMAND\tCAPACITY\tRATIO\tVERDICT")
	for _, c := range res.Checks {
		verdict := "PASS"
		if !c.Pass {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.3f\t%s\n",
			c.Name, c.Clause, c.Demand, c.Capacity, c.Ratio, verdict)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Overall: %s\n", res.Status)
	for _, warn := range res.Warnings {
		fmt.Printf("warning: %s\n", warn)
	}
}
