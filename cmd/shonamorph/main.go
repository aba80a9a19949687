// Command shonamorph analyzes Shona noun morphology from the command
// line and serves the JSON REST API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/shona-nlp/shonamorph"
	"github.com/shona-nlp/shonamorph/config"
	"github.com/shona-nlp/shonamorph/internal/logging"
	"github.com/shona-nlp/shonamorph/internal/segmenter"
	"github.com/shona-nlp/shonamorph/internal/server"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "shonamorph",
		Short: "Shona noun-class morphological analyzer",
		Long: `Shonamorph segments Shona nouns into class prefix and stem and maps
the prefix onto Fortune's noun-class system: class, meaning, number,
lemma and companion (plural/singular) form.

Segmentation uses the pretrained splitting model when configured
(segmenter.backend: onnx) and a longest-known-prefix fallback
otherwise.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")

	setup := func() (*config.Config, *slog.Logger, func(), error) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, nil, nil, err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFile != "" {
			cfg.Logging.File = logFile
		}
		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return nil, nil, nil, err
		}
		logger, cleanup, err := logging.Setup(cfg.Logging.File, level)
		if err != nil {
			return nil, nil, nil, err
		}
		slog.SetDefault(logger)
		return cfg, logger, cleanup, nil
	}

	cmd.AddCommand(analyzeCmd(setup))
	cmd.AddCommand(resolveCmd())
	cmd.AddCommand(classesCmd())
	cmd.AddCommand(serveCmd(setup))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shonamorph version %s\n", version)
		},
	})

	return cmd
}

type setupFunc func() (*config.Config, *slog.Logger, func(), error)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildAnalyzer assembles the analyzer with the configured segmenter
// backend. The returned closer releases model resources, if any.
func buildAnalyzer(cfg *config.Config, logger *slog.Logger) (*shonamorph.Analyzer, func(), error) {
	base, err := shonamorph.New()
	if err != nil {
		return nil, nil, err
	}

	var (
		seg      shonamorph.Segmenter
		closeSeg = func() {}
	)
	switch cfg.Segmenter.Backend {
	case "onnx":
		splitter, err := segmenter.New(segmenter.Config{
			ModelPath:  cfg.Segmenter.ModelPath,
			VocabPath:  cfg.Segmenter.VocabPath,
			OrtLibrary: cfg.Segmenter.OrtLibrary,
			MaxLen:     cfg.Segmenter.MaxLen,
			InputName:  cfg.Segmenter.InputName,
			OutputName: cfg.Segmenter.OutputName,
			Threshold:  cfg.Segmenter.Threshold,
		})
		if err != nil {
			return nil, nil, err
		}
		seg = splitter
		closeSeg = func() { _ = splitter.Close() }
	default:
		logger.Warn("using longest-prefix fallback segmenter; splits are approximate")
		seg = shonamorph.NewLongestPrefixSegmenter(base)
	}

	analyzer, err := shonamorph.New(shonamorph.WithSegmenter(seg))
	if err != nil {
		closeSeg()
		return nil, nil, err
	}
	return analyzer, closeSeg, nil
}

func analyzeCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <word> [word...]",
		Short: "Segment and classify one or more words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			analyzer, closeAnalyzer, err := buildAnalyzer(cfg, logger)
			if err != nil {
				return err
			}
			defer closeAnalyzer()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			for _, word := range args {
				analysis, err := analyzer.Analyze(context.Background(), word)
				if err != nil {
					return fmt.Errorf("analyze %q: %w", word, err)
				}
				if err := enc.Encode(analysis); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	var prefix, stem string
	cmd := &cobra.Command{
		Use:   "resolve --prefix <prefix> --stem <stem>",
		Short: "Classify an already-segmented word",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stem == "" {
				return fmt.Errorf("--stem is required")
			}
			analysis := shonamorph.Default().Resolve(prefix, stem)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "noun class prefix (empty for zero-prefix nouns)")
	cmd.Flags().StringVar(&stem, "stem", "", "noun stem")
	return cmd
}

func classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the known prefixes and their noun classes",
		Run: func(cmd *cobra.Command, args []string) {
			a := shonamorph.Default()
			out := cmd.OutOrStdout()
			for _, prefix := range a.KnownPrefixes() {
				fmt.Fprintf(out, "%s-\n", prefix)
				for _, e := range a.Entries(prefix) {
					line := fmt.Sprintf("  class %-3s %-9s %s", e.ID, e.Number, e.Meaning)
					if p, ok := e.Pairing.Companion(); ok {
						line += fmt.Sprintf(" (plural: %s-)", p)
					}
					if p, ok := e.Pairing.Source(); ok {
						line += fmt.Sprintf(" (singular: %s-)", p)
					}
					fmt.Fprintln(out, line)
				}
			}
			fmt.Fprintf(out, "\nno visible prefix: classes %v\n", shonamorph.FallbackClasses())
		},
	}
}

func serveCmd(setup setupFunc) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()
			if addr != "" {
				cfg.Server.Addr = addr
			}

			analyzer, closeAnalyzer, err := buildAnalyzer(cfg, logger)
			if err != nil {
				return err
			}
			defer closeAnalyzer()

			srv := server.New(analyzer, logger, cfg.Server.AllowedOrigins)
			logger.Info("listening", "addr", cfg.Server.Addr)
			return http.ListenAndServe(cfg.Server.Addr, srv.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
