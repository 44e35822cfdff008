package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/catalog"
	"github.com/nic1611/furnctl/internal/config"
	"github.com/nic1611/furnctl/internal/telemetry"
	"github.com/nic1611/furnctl/internal/version"
	"github.com/nic1611/furnctl/pkg/furniture"
)

// Runtime is filled in by the root command before any subcommand runs
type Runtime struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Metrics *telemetry.Metrics

	shutdown func(context.Context) error
}

// Close stops the metrics pipeline. Calling it again is a no-op.
func (rt *Runtime) Close(ctx context.Context) error {
	if rt.shutdown == nil {
		return nil
	}
	sd := rt.shutdown
	rt.shutdown = nil
	return sd(ctx)
}

// NewRootCmd builds the furnctl command tree. Extra factories are
// registered after the built-in families, in name order.
func NewRootCmd(extra map[string]furniture.Factory) *cobra.Command {
	return newRootCmd(&Runtime{}, extra)
}

func newRootCmd(rt *Runtime, extra map[string]furniture.Factory) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "furnctl",
		Short:         "Abstract furniture factories",
		Long:          `furnctl builds matching chairs and tables from interchangeable factories.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			log.SetOutput(io.Discard)
			if cfg.Verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
			log.Printf("config: variants=%v output=%s narrate=%v", cfg.Variants, cfg.Output, cfg.Narrate)

			sd, metrics, err := telemetry.InitMetrics(version.Version)
			if err != nil {
				return fmt.Errorf("failed to initialize metrics: %w", err)
			}
			rt.shutdown = sd

			cat := catalog.Default(catalog.WithDecorator(func(v furniture.Variant, f furniture.Factory) furniture.Factory {
				return telemetry.Instrument(f, v, metrics)
			}))
			names := make([]string, 0, len(extra))
			for name := range extra {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				cat.Register(furniture.Variant(name), extra[name])
				log.Printf("registered variant %s (%T)", name, extra[name])
			}

			rt.Config = cfg
			rt.Catalog = cat
			rt.Metrics = metrics
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Verbose output")

	rootCmd.AddCommand(NewDemoCmd(rt))
	rootCmd.AddCommand(NewListCmd(rt))
	rootCmd.AddCommand(NewShowCmd(rt))
	rootCmd.AddCommand(NewCollaborateCmd(rt))
	rootCmd.AddCommand(NewVersionCmd())

	for _, c := range rootCmd.Commands() {
		closeAfter(rt, c)
	}
	return rootCmd
}

// closeAfter shuts the runtime down once the command returns, whether or not
// it failed. Cobra skips post-run hooks after an error.
func closeAfter(rt *Runtime, cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer func() {
			if err := rt.Close(context.Background()); err != nil {
				log.Printf("Warning: failed to shut down metrics: %v", err)
			}
		}()
		return run(cmd, args)
	}
}
