package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/render"

	// Register every output format.
	_ "github.com/gogpu/ggchart/render/raster"
	_ "github.com/gogpu/ggchart/render/svg"
	_ "github.com/gogpu/ggchart/render/vector"
)

const defaultOutput = "speedup_lpips.png"

// options holds the flag values shared by all subcommands.
type options struct {
	output      string
	format      string
	dpi         float64
	fontFile    string
	systemFonts bool
	locale      string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ggchart",
		Short: "Render the speedup vs LPIPS comparison chart",
		Long: `ggchart draws the accuracy/speed trade-off of the proposed method's presets
against competing acceleration methods: baselines as translucent bars, the
proposed method as a shaded trend line, each point labelled.

Run without a subcommand to render the chart to speedup_lpips.png.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ggchart.SetLogger(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&opts.dpi, "dpi", ggchart.DefaultStyle().DPI, "raster resolution in dots per inch")
	pf.StringVar(&opts.fontFile, "font", "", "TTF/OTF file used for all text")
	pf.BoolVar(&opts.systemFonts, "system-fonts", false, "look the font family up among installed fonts")
	pf.StringVar(&opts.locale, "locale", "en", "BCP 47 locale for tick labels")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	addRenderFlags(root, opts)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to a file",
		Long: `Builds the chart and writes it to --output. The format follows the file
extension unless --format names a backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	addRenderFlags(renderCmd, opts)

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the built figure as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackends(cmd.OutOrStdout())
		},
	}

	root.AddCommand(renderCmd, describeCmd, backendsCmd)
	return root
}

func addRenderFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", defaultOutput, "output file")
	f.StringVar(&opts.format, "format", "", "output backend (default: from the file extension)")
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	ggchart.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// style converts flag values into a chart style.
func (o *options) style() (ggchart.Style, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return ggchart.Style{}, fmt.Errorf("locale %q: %w", o.locale, err)
	}
	st := ggchart.NewStyle(
		ggchart.WithDPI(o.dpi),
		ggchart.WithFontFile(o.fontFile),
		ggchart.WithSystemFonts(o.systemFonts),
		ggchart.WithLocale(tag),
	)
	return st, st.Validate()
}

func (o *options) build() (*ggchart.Figure, error) {
	st, err := o.style()
	if err != nil {
		return nil, err
	}
	return ggchart.Build(ggchart.DefaultDataset(), st)
}

func runRender(cmd *cobra.Command, opts *options) error {
	fig, err := opts.build()
	if err != nil {
		return err
	}
	return render.WriteFile(cmd.Context(), fig, opts.output, opts.format)
}

func runBackends(w io.Writer) error {
	for _, name := range render.Backends() {
		if _, err := fmt.Fprintf(w, "%-6s %s\n", name, strings.Join(render.Extensions(name), " ")); err != nil {
			return err
		}
	}
	return nil
}
