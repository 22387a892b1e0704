// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"code.hybscloud.com/foldl"
	"code.hybscloud.com/foldl/internal/config"
	"code.hybscloud.com/foldl/internal/logging"
	"code.hybscloud.com/foldl/internal/source"
	"code.hybscloud.com/foldl/internal/summary"
)

// configKeys maps flag names to config keys. Only flags set on the command
// line override the config.
var configKeys = map[string]string{
	"take":       "stats.take",
	"min":        "stats.min",
	"max":        "stats.max",
	"scale":      "stats.scale",
	"offset":     "stats.offset",
	"format":     "stats.format",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int("take", 0, "summarize only the first N accepted samples (0 for all)")
	statsCmd.Flags().Float64("min", 0, "reject samples below this value after scaling")
	statsCmd.Flags().Float64("max", 0, "reject samples above this value after scaling")
	statsCmd.Flags().Float64("scale", 1, "multiply every sample by this factor")
	statsCmd.Flags().Float64("offset", 0, "add this value to every sample after scaling")
	statsCmd.Flags().String("format", "", "output format (text, json)")
}

// statsCmd summarizes numbers from files or stdin
var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Summarize numbers from files or stdin",
	Long: `Summarize whitespace separated numbers read from files or stdin.

All inputs are folded together in order in a single pass. '#' starts a
comment that runs to the end of the line.

Examples:
  # Summarize a file
  foldl stats samples.txt

  # Summarize stdin, as JSON
  seq 1 100 | foldl stats --format json

  # Only the first 10 samples in [0, 50] after converting to percent
  foldl stats --scale 100 --min 0 --max 50 --take 10 ratios.txt`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, flagOverrides(cmd.Flags()))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if len(args) == 0 {
		args = []string{"-"}
	}

	start := time.Now()
	s, err := summarize(cmd.InOrStdin(), args, options(cfg.Stats), logger)
	if err != nil {
		logger.Error("stats failed", zap.Error(err))
		return err
	}
	logger.Info("summarized",
		zap.Int("inputs", len(args)),
		zap.Int("count", s.Count),
		zap.Duration("elapsed", time.Since(start)),
	)

	return writeSummary(cmd.OutOrStdout(), cfg.Stats.Format, s)
}

func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if key, ok := configKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}

func options(s config.Stats) summary.Options {
	return summary.Options{
		Take:   s.Take,
		Min:    s.Min,
		Max:    s.Max,
		Scale:  s.Scale,
		Offset: s.Offset,
	}
}

// summarize folds every input, in order, into one summary. "-" reads stdin.
func summarize(stdin io.Reader, names []string, opts summary.Options, logger *zap.Logger) (summary.Summary, error) {
	acc := summary.Build(opts).Open()
	for _, name := range names {
		if err := feed(acc, stdin, name, logger); err != nil {
			return summary.Summary{}, err
		}
	}
	return acc.Done(), nil
}

func feed(acc foldl.Accumulator[float64, summary.Summary], stdin io.Reader, name string, logger *zap.Logger) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	sc := source.NewScanner(r)
	for v := range sc.All() {
		acc.Step(v)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("input read", zap.String("name", name), zap.Int("lines", sc.Lines()))
	return nil
}

// report is the JSON form of a summary. Absent extrema are omitted.
type report struct {
	Count    int      `json:"count"`
	Sum      float64  `json:"sum"`
	Mean     float64  `json:"mean"`
	Variance float64  `json:"variance"`
	Std      float64  `json:"std"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	First    *float64 `json:"first,omitempty"`
	Last     *float64 `json:"last,omitempty"`
}

func newReport(s summary.Summary) report {
	return report{
		Count:    s.Count,
		Sum:      s.Sum,
		Mean:     s.Mean,
		Variance: s.Variance,
		Std:      s.Std,
		Min:      optional(s.Min),
		Max:      optional(s.Max),
		First:    optional(s.First),
		Last:     optional(s.Last),
	}
}

func optional(o foldl.Option[float64]) *float64 {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}

func writeSummary(w io.Writer, format string, s summary.Summary) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(s)); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	}

	rows := []struct {
		name  string
		value string
	}{
		{"count", fmt.Sprint(s.Count)},
		{"sum", fmt.Sprint(s.Sum)},
		{"mean", fmt.Sprint(s.Mean)},
		{"variance", fmt.Sprint(s.Variance)},
		{"std", fmt.Sprint(s.Std)},
		{"min", text(s.Min)},
		{"max", text(s.Max)},
		{"first", text(s.First)},
		{"last", text(s.Last)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-9s%s\n", row.name, row.value); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func text(o foldl.Option[float64]) string {
	v, ok := o.Get()
	if !ok {
		return "-"
	}
	return fmt.Sprint(v)
}
