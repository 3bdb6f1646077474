package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridflow/pkg/pipeline"
)

// arrangeCommand creates the arrange command for computing grid layouts.
func (c *CLI) arrangeCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetArrangeDefaults()

	cmd := &cobra.Command{
		Use:   "arrange [manifest.toml]",
		Short: "Compute a grid layout from a section manifest",
		Long: `Compute a grid layout from a section manifest.

The arrange command reads a TOML manifest describing grid sections (columns,
sizing modes, spacing metrics, items) and computes item frames for the target
viewport. The output is a layout.json file that can be served or previewed.

Results are cached locally for faster subsequent runs; the cache key binds
the manifest content to the viewport dimensions, so a resize recomputes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], opts, output, formats, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Arrange flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "viewport width in cells")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "viewport height in cells")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even on a cache hit")
	cmd.Flags().StringVarP(&formats, "formats", "f", "", "output formats: json (default), summary")

	return cmd
}

// runArrange loads the manifest, arranges the layout, and writes output.
func (c *CLI) runArrange(ctx context.Context, input string, opts pipeline.Options, output, formats string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.ManifestPath = input
	opts.Formats = parseFormats(formats)
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Arranging layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Arrangement failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if data, ok := result.Artifacts[pipeline.FormatJSON]; ok {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printSuccess("Layout complete")
		printFile(outputPath)
	}
	printStats(result.Stats.SectionCount, result.Stats.FrameCount, result.CacheInfo.LayoutHit)

	if summary, ok := result.Artifacts[pipeline.FormatSummary]; ok {
		printNewline()
		fmt.Print(string(summary))
	}

	printNewline()
	printNextStep("Preview", "gridflow preview "+input)

	return nil
}
