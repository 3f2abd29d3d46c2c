package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphengine/tensorcore/tensor"
)

// NewCLI builds the root command. Flags can also be set through TENSORCORE_*
// environment variables, e.g. TENSORCORE_LAYOUT=col.
func NewCLI() *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix("TENSORCORE")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault("log-level", "info")
	cfg.SetDefault("layout", "row")

	rootCmd := &cobra.Command{
		Use:           "tensorcore",
		Short:         "Inspect tensor layouts and storage aliasing",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(cfg.GetString("log-level"))
		},
	}
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = cfg.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensorcore %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd, newOffsetsCmd(cfg), newAliasCmd(cfg))
	return rootCmd
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// parseInts parses a comma separated list such as "3,4".
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out[i] = n
	}
	return out, nil
}

func parseLayout(name, strides string) (tensor.Layout, error) {
	switch strings.ToLower(name) {
	case "row", "row-major", "c":
		return tensor.RowMajor(), nil
	case "col", "col-major", "f":
		return tensor.ColMajor(), nil
	case "strided":
		s, err := parseInts(strides)
		if err != nil {
			return tensor.Layout{}, err
		}
		return tensor.Strided(s...), nil
	default:
		return tensor.Layout{}, fmt.Errorf("unknown layout %q (want row, col or strided)", name)
	}
}

// nextIndex advances idx to the next multi-index in row-major order.
// Returns false after the last one.
func nextIndex(idx []int, extents tensor.Shape) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < extents[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

func formatIndex(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
