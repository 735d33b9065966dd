package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pspoerri/geocrs/internal/crs"
	"github.com/pspoerri/geocrs/internal/defn"
	"github.com/pspoerri/geocrs/internal/epsg"
	"github.com/pspoerri/geocrs/internal/geotiff"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

type options struct {
	epsgCode    int
	defPath     string
	geotiffPath string
	format      string
	list        bool
	showVersion bool
	verbose     bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "crsinfo",
		Short: "Print a coordinate reference system as PROJ, OGC WKT and ESRI WKT",
		Long: `crsinfo renders a coordinate reference system in PROJ, OGC WKT and
ESRI WKT. The CRS comes from exactly one source: an EPSG code, a TOML or
YAML definition file, or the GeoKeys of a GeoTIFF.`,
		Example: `  crsinfo --epsg 2056
  crsinfo --def lcc.toml --format esri
  crsinfo --geotiff dem.tif --format proj4`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, opts.verbose)
			defer func() { _ = log.Sync() }()

			err := run(cmd, opts, stdout, log)
			if err != nil {
				log.Errorf("%v", err)
			}
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.IntVar(&opts.epsgCode, "epsg", 0, "EPSG code to render")
	f.StringVar(&opts.defPath, "def", "", "TOML or YAML CRS definition file")
	f.StringVar(&opts.geotiffPath, "geotiff", "", "GeoTIFF whose GeoKeys name the CRS")
	f.StringVar(&opts.format, "format", "all", "Output grammar: proj4, ogc, esri or all")
	f.BoolVar(&opts.list, "list", false, "List supported EPSG codes and exit")
	f.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}

// newLogger writes human-readable logs to w. Only warnings and errors are
// shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func run(cmd *cobra.Command, opts options, stdout io.Writer, log *zap.SugaredLogger) error {
	if opts.showVersion {
		fmt.Fprintf(stdout, "crsinfo %s (commit %s, built %s)\n", version, commit, buildDate)
		return nil
	}
	if opts.list {
		return listCodes(stdout)
	}

	grammars, err := parseFormat(opts.format)
	if err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{cmd.Flags().Changed("epsg"), opts.defPath != "", opts.geotiffPath != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("exactly one of --epsg, --def or --geotiff is required")
	}

	c, err := resolve(opts, log)
	if err != nil {
		return err
	}
	log.Debugw("resolved CRS", "name", c.Name(), "kind", c.Kind())

	if len(grammars) == 1 {
		fmt.Fprintln(stdout, c.Render(grammars[0]))
		return nil
	}
	fmt.Fprintf(stdout, "Name: %s\n", c.Name())
	for _, g := range grammars {
		fmt.Fprintf(stdout, "%s: %s\n", label(g), c.Render(g))
	}
	return nil
}

func resolve(opts options, log *zap.SugaredLogger) (crs.CRS, error) {
	switch {
	case opts.defPath != "":
		log.Debugw("loading definition", "path", opts.defPath)
		d, err := defn.Load(opts.defPath)
		if err != nil {
			return crs.CRS{}, err
		}
		return d.Build()

	case opts.geotiffPath != "":
		keys, err := geotiff.Open(opts.geotiffPath)
		if err != nil {
			return crs.CRS{}, err
		}
		log.Debugw("read GeoKeys",
			"path", opts.geotiffPath,
			"model", keys.ModelType,
			"geographic", keys.GeographicType,
			"projected", keys.ProjectedType,
			"citation", keys.Citation,
			"geog_citation", keys.GeogCitation,
			"proj_citation", keys.ProjCitation,
		)
		c, err := keys.CRS()
		if err != nil {
			return crs.CRS{}, errors.Wrapf(err, "%s", opts.geotiffPath)
		}
		return c, nil

	default:
		return epsg.Lookup(opts.epsgCode)
	}
}

func parseFormat(s string) ([]grammar.Grammar, error) {
	if s == "all" {
		return grammar.All, nil
	}
	g, err := grammar.Parse(s)
	if err != nil {
		return nil, err
	}
	return []grammar.Grammar{g}, nil
}

func label(g grammar.Grammar) string {
	switch g {
	case grammar.Proj4:
		return "PROJ"
	case grammar.OGCWKT:
		return "OGC WKT"
	case grammar.ESRIWKT:
		return "ESRI WKT"
	default:
		return g.String()
	}
}

func listCodes(w io.Writer) error {
	for _, code := range epsg.Codes() {
		c, err := epsg.Lookup(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", code, c.Name())
	}
	fmt.Fprintln(w, "32601-32660\tWGS 84 / UTM zones 1N-60N")
	fmt.Fprintln(w, "32701-32760\tWGS 84 / UTM zones 1S-60S")
	fmt.Fprintln(w, "25828-25838\tETRS89 / UTM zones 28N-38N")
	return nil
}
