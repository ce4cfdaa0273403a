// Command dscale-demo renders a small faceted demo plot: jittered points
// and bars over a categorical x axis, written as a PNG file.
//
// All flags can also be set through a YAML config file (--config) or
// through DSCALE_* environment variables.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/dscale"
	"github.com/vdobler/dscale/data"
	"github.com/vdobler/dscale/geom"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dscale-demo",
	Short: "Render a demo plot with discrete position scales",
	Long: `dscale-demo renders a faceted demo plot showing how discrete
position scales handle categorical labels together with continuous
values on the same axis: the left panel jitters points around their
category positions, the right panel draws bars on the category slots.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.Flags().String("output", "dscale-demo.png", "output PNG file")
	rootCmd.Flags().Float64("width", 20, "plot width in cm")
	rootCmd.Flags().Float64("height", 12, "plot height in cm")
	rootCmd.Flags().Float64("jitter", 0.35, "jitter half width in axis units")
	rootCmd.Flags().Int64("seed", 1, "random seed for the demo data and jitter")
	rootCmd.Flags().Bool("verbose", false, "log scale training at debug level")

	viper.SetEnvPrefix("dscale")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "reading config")
		}
	}

	logger, err := newLogger(viper.GetBool("verbose"))
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	seed := viper.GetInt64("seed")
	rnd := rand.New(rand.NewSource(seed))

	// Demo data: three treatment groups with noisy measurements.
	groups := []string{"control", "low dose", "high dose"}
	center := []float64{2.5, 4.0, 6.5}
	points := data.XYs{}
	sums := make([]float64, len(groups))
	for g, label := range groups {
		for i := 0; i < 40; i++ {
			y := center[g] + rnd.NormFloat64()
			points = append(points, struct{ X, Y dscale.Value }{
				X: dscale.Categorical(label),
				Y: dscale.Numeric(y),
			})
			sums[g] += y
		}
	}
	means := make([]float64, len(groups))
	for g := range groups {
		means[g] = sums[g] / 40
	}

	f := dscale.NewFacet(1, 2, true, false)
	f.Title = "Discrete position scales"
	f.ColLabels[0] = "jittered"
	f.ColLabels[1] = "group mean"
	f.XScales[0].Title = "treatment"
	f.XScales[1].Title = "treatment"
	f.YScales[0].Title = "response"
	f.Logger = sugar

	f.Panels[0][0].Geoms = []dscale.Geom{
		&geom.Point{
			XY:          points,
			JitterWidth: viper.GetFloat64("jitter"),
			Seed:        seed,
		},
	}
	f.Panels[0][1].Geoms = []dscale.Geom{
		&geom.Bar{XY: data.LabeledYs(groups, means)},
	}

	if err := f.Range(); err != nil {
		return errors.Wrap(err, "resolving scale ranges")
	}
	for c, s := range f.XScales {
		sugar.Infow("x scale resolved", "col", c,
			"levels", s.Levels(), "dimension", s.Range)
	}

	w := vg.Length(viper.GetFloat64("width")) * vg.Centimeter
	h := vg.Length(viper.GetFloat64("height")) * vg.Centimeter
	img := vgimg.New(w, h)
	if err := f.Draw(draw.New(img)); err != nil {
		return errors.Wrap(err, "drawing facet")
	}

	out := viper.GetString("output")
	file, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	defer file.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	sugar.Infow("wrote demo plot", "file", out)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
