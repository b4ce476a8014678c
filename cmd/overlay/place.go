package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	overlay "github.com/grindlemire/go-overlay"
)

func newPlaceCmd() *cobra.Command {
	var (
		opts      runOptions
		noPreview bool
	)

	cmd := &cobra.Command{
		Use:   "place <scenario.toml...>",
		Short: "Place an overlay for each scenario and print the result",
		Long: `Place an overlay for each scenario and print the result.

Every scenario runs on its own in-memory document. The committed pair, the
laid-out rectangle and every declaration the strategy wrote are printed,
followed by a scaled preview of the viewport unless --no-preview is set.

With --engine auto the anchor engine is used when the terminal reports
anchor positioning support (OVERLAY_ANCHOR_POSITIONING=1).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.anchorCap = overlay.DetectCapabilities().AnchorPositioning
			return runPlace(cmd.Context(), cmd.OutOrStdout(), args, opts, !noPreview)
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "engine: auto, flexible (manual) or anchor (default: from scenario)")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "force right-to-left direction")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "do not draw the viewport preview")
	return cmd
}

// runPlace runs the scenario files concurrently and prints the results in
// argument order.
func runPlace(ctx context.Context, w io.Writer, paths []string, opts runOptions, preview bool) error {
	logger := loggerFromContext(ctx)
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			sc, err := loadScenario(path)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(ctx, sc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug("placed scenarios", "count", len(results))
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printResult(w, res)
		if preview {
			fmt.Fprintln(w, renderPreview(res, previewCols, previewRows))
		}
	}
	return nil
}

func printResult(w io.Writer, res *Result) {
	fmt.Fprintln(w, StyleTitle.Render(res.Scenario.Name))
	printField(w, "engine", res.Engine.String())
	printField(w, "position", res.Pair.String())
	if res.Placement.Fallback != "" {
		printField(w, "fallback", res.Placement.Fallback)
	}
	r := res.Placement.Rect
	printField(w, "rect", fmt.Sprintf("x=%d y=%d w=%d h=%d", r.X, r.Y, r.Width, r.Height))
	if res.Placement.Fits {
		printField(w, "fits", StyleSuccess.Render("yes"))
	} else {
		printField(w, "fits", StyleWarning.Render("no"))
	}
	printField(w, "pane", res.PaneCSS)
	if res.HostCSS != "" {
		printField(w, "host", res.HostCSS)
	}
	if res.SheetCSS != "" {
		fmt.Fprint(w, StyleDim.Render(res.SheetCSS))
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", StyleDim.Render(fmt.Sprintf("%-9s", label)), StyleValue.Render(value))
}

