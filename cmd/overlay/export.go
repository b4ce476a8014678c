package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/tools/imports"

	overlay "github.com/grindlemire/go-overlay"
)

const overlayImportPath = "github.com/grindlemire/go-overlay"

func newExportCmd() *cobra.Command {
	var (
		gen    exporter
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <scenario.toml>",
		Short: "Print a scenario's positions as Go source",
		Long: `Print a scenario's positions as Go source.

The output declares a []overlay.ConnectionPair variable that can be passed
straight to SetPositions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			gen.sourceFile = args[0]
			src, err := gen.generate(sc.Positions)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			loggerFromContext(cmd.Context()).Info("wrote positions", "file", output, "count", len(sc.Positions))
			return nil
		},
	}

	cmd.Flags().StringVar(&gen.pkg, "package", "main", "package clause of the generated file")
	cmd.Flags().StringVar(&gen.varName, "var", "positions", "name of the generated variable")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// exporter renders connection pairs as a Go variable declaration.
type exporter struct {
	pkg        string
	varName    string
	sourceFile string

	// skipImports formats with format.Source instead of imports.Process.
	skipImports bool

	buf bytes.Buffer
}

func (g *exporter) generate(positions []overlay.ConnectionPair) ([]byte, error) {
	if !token.IsIdentifier(g.pkg) {
		return nil, fmt.Errorf("invalid package name %q", g.pkg)
	}
	if !token.IsIdentifier(g.varName) {
		return nil, fmt.Errorf("invalid variable name %q", g.varName)
	}

	g.buf.Reset()
	g.printf("// Code generated by overlay export from %s. DO NOT EDIT.\n\n", g.sourceFile)
	g.printf("package %s\n\n", g.pkg)
	g.printf("import overlay %q\n\n", overlayImportPath)
	g.printf("var %s = []overlay.ConnectionPair{\n", g.varName)
	for _, p := range positions {
		g.printf("%s,\n", pairExpr(p))
	}
	g.printf("}\n")

	if g.skipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process(g.sourceFile, g.buf.Bytes(), nil)
}

func (g *exporter) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// pairExpr renders p as a constructor chain.
func pairExpr(p overlay.ConnectionPair) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "overlay.Pair(%s, %s, %s, %s)",
		horizontalIdent(p.OriginX), verticalIdent(p.OriginY),
		horizontalIdent(p.OverlayX), verticalIdent(p.OverlayY))

	switch {
	case p.OffsetX != nil && p.OffsetY != nil:
		fmt.Fprintf(&sb, ".WithOffset(%d, %d)", *p.OffsetX, *p.OffsetY)
	case p.OffsetX != nil:
		fmt.Fprintf(&sb, ".WithOffsetX(%d)", *p.OffsetX)
	case p.OffsetY != nil:
		fmt.Fprintf(&sb, ".WithOffsetY(%d)", *p.OffsetY)
	}

	if len(p.PanelClass) > 0 {
		quoted := make([]string, len(p.PanelClass))
		for i, c := range p.PanelClass {
			quoted[i] = strconv.Quote(c)
		}
		fmt.Fprintf(&sb, ".WithPanelClass(%s)", strings.Join(quoted, ", "))
	}
	return sb.String()
}

func horizontalIdent(h overlay.HorizontalPos) string {
	switch h {
	case overlay.Start:
		return "overlay.Start"
	case overlay.HCenter:
		return "overlay.HCenter"
	case overlay.End:
		return "overlay.End"
	}
	return fmt.Sprintf("overlay.HorizontalPos(%q)", string(h))
}

func verticalIdent(v overlay.VerticalPos) string {
	switch v {
	case overlay.Top:
		return "overlay.Top"
	case overlay.VCenter:
		return "overlay.VCenter"
	case overlay.Bottom:
		return "overlay.Bottom"
	}
	return fmt.Sprintf("overlay.VerticalPos(%q)", string(v))
}
