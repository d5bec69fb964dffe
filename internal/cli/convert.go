package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
)

func newConvertCmd(opts *options) *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [definition]",
		Short: "Convert a definition between YAML and TOML",
		Long: `Convert a ribbon definition to another format. The output format comes
from --to, or from the extension of --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := config.Format(to)
			if to == "" && output != "" {
				f, err := config.FormatForPath(output)
				if err != nil {
					return err
				}
				format = f
			}
			if format == "" {
				format = config.FormatYAML
			}

			ribbon, err := opts.loadRibbon(args)
			if err != nil {
				return err
			}
			data, err := config.MarshalDefinition(ribbon, format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			opts.logger.Info("definition converted", "output", output, "format", format)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "output format: yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
