package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// DefaultCellWidth is the width of one terminal cell in layout units
const DefaultCellWidth = 7.0

// options holds the flags shared by all subcommands
type options struct {
	configPath string
	jsonOutput bool
	cellWidth  float64

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the ribbonlayout command tree
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ribbonlayout",
		Short: "Run the ribbon layout engines on a definition file",
		Long: `ribbonlayout loads a ribbon definition (YAML or TOML) and prints how
the tab strip and the group boxes of a tab are laid out at a given width.

Without a definition file the definition path from the config file is used,
falling back to the built-in document editor ribbon.

Examples:
  ribbonlayout tabs ribbon.yaml --width 320
  ribbonlayout tabs --contextual table --json
  ribbonlayout groups ribbon.toml --tab Home --width 400
  ribbonlayout convert ribbon.yaml --to toml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})).
				With("component", "cli")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("RIBBON_CONFIG"), "config file (default is config.toml in the user config dir)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of a table")
	cmd.PersistentFlags().Float64Var(&opts.cellWidth, "cell-width", DefaultCellWidth, "layout units per terminal cell when measuring headers")

	cmd.AddCommand(newTabsCmd(opts))
	cmd.AddCommand(newGroupsCmd(opts))
	cmd.AddCommand(newConvertCmd(opts))

	return cmd
}

// loadRibbon loads the definition named by args, the configured definition,
// or the built-in one
func (o *options) loadRibbon(args []string) (*model.Ribbon, error) {
	path := o.cfg.Definition.Path
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		o.logger.Debug("using built-in definition")
		return config.DefaultDefinition()
	}

	ribbon, err := config.LoadDefinition(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	o.logger.Debug("definition loaded", "path", path, "tabs", len(ribbon.Tabs))
	return ribbon, nil
}
