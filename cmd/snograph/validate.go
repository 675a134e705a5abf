package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/snograph/snograph/graph"
	"github.com/snograph/snograph/internal/config"
	"github.com/snograph/snograph/internal/telemetry"
	"github.com/snograph/snograph/report"
	"github.com/snograph/snograph/rf2"
)

var (
	validateConfigPath string
	validateStated     string
	validateInferred   string
	validateDebug      bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load both relationship views and verify the hierarchies",
	Long: `validate streams the stated and inferred relationship snapshots into
their registries, then scans each view for concepts with no is-a parent.
Exactly one such concept is expected per view (the hierarchy root); any
other count is reported for operator review.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "snograph.yaml", "path to the configuration file")
	validateCmd.Flags().StringVar(&validateStated, "stated", "", "stated relationship file (overrides config)")
	validateCmd.Flags().StringVar(&validateInferred, "inferred", "", "inferred relationship file (overrides config)")
	validateCmd.Flags().BoolVar(&validateDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		return err
	}
	if validateStated != "" {
		cfg.StatedPath = validateStated
	}
	if validateInferred != "" {
		cfg.InferredPath = validateInferred
	}

	level := log.InfoLevel
	if cfg.Debug || validateDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	shutdown, err := telemetry.Init(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("failed to flush spans", "error", err)
		}
	}()

	hasher, err := graph.NewType5Hasher(cfg.HashNamespace)
	if err != nil {
		return err
	}
	views, err := graph.NewViews(hasher)
	if err != nil {
		return err
	}

	if err := loadViews(ctx, logger, cfg, views); err != nil {
		return err
	}
	return verifyHierarchies(ctx, logger, cfg, views)
}

// loadViews streams both snapshots into their registries. The two views are
// independent and each registry has a single writer, so they load
// concurrently; errgroup is the phase barrier before any query runs.
func loadViews(ctx context.Context, logger *log.Logger, cfg *config.Config, views *graph.Views) error {
	inputs := []struct {
		characteristic rf2.Characteristic
		path           string
		registry       *graph.Registry
	}{
		{rf2.Stated, cfg.StatedPath, views.Stated},
		{rf2.Inferred, cfg.InferredPath, views.Inferred},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, in := range inputs {
		g.Go(func() error {
			_, span := telemetry.Tracer().Start(ctx, "load",
				trace.WithAttributes(attribute.String("characteristic", in.characteristic.String())))
			defer span.End()

			parser := rf2.NewParser()
			if cfg.IsATypeID != 0 {
				parser = parser.WithIsAType(cfg.IsATypeID)
			}

			rows := 0
			err := parser.ParseFile(in.path, func(rel rf2.Relationship) error {
				// The file may interleave views; only this view's rows
				// belong to this registry.
				if rel.Characteristic != in.characteristic {
					return nil
				}
				rows++
				return in.registry.Register(rel)
			})
			if err != nil {
				return fmt.Errorf("failed to load %s view: %w", in.characteristic, err)
			}

			logger.Info("view loaded",
				"characteristic", in.characteristic,
				"rows", rows,
				"concepts", in.registry.Len())
			return nil
		})
	}
	return g.Wait()
}

// verifyHierarchies runs the orphan scan over both loaded views and routes
// the results through the configured report sinks.
func verifyHierarchies(ctx context.Context, logger *log.Logger, cfg *config.Config, views *graph.Views) error {
	_, span := telemetry.Tracer().Start(ctx, "verify-hierarchies")
	defer span.End()

	sinks := report.MultiSink{report.NewLogSink(logger)}
	if cfg.ReportPath != "" {
		f, err := os.Create(cfg.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		sinks = append(sinks, report.NewWriterSink(f))
	}

	for _, r := range []*graph.Registry{views.Stated, views.Inferred} {
		if err := sinks.Orphans(r.Characteristic(), r.Orphans()); err != nil {
			return err
		}
	}
	return nil
}
