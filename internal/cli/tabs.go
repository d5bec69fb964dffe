package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/tabstrip"
)

// TabRow is one tab in the tabs report
type TabRow struct {
	Header          string  `json:"header"`
	ContextualGroup string  `json:"contextual_group,omitempty"`
	IntrinsicWidth  float64 `json:"intrinsic_width"`
	AssignedWidth   float64 `json:"assigned_width"`
	Separator       bool    `json:"separator"`
}

// TabsReport is the outcome of one tab strip allocation
type TabsReport struct {
	Step           string   `json:"step"`
	AvailableWidth float64  `json:"available_width"`
	TotalWidth     float64  `json:"total_width"`
	Overflow       bool     `json:"overflow"`
	Tabs           []TabRow `json:"tabs"`
}

type tabsOptions struct {
	width      float64
	whitespace float64
	contextual []string
}

func newTabsCmd(opts *options) *cobra.Command {
	tabsOpts := &tabsOptions{}

	cmd := &cobra.Command{
		Use:   "tabs [definition]",
		Short: "Allocate tab header widths",
		Long: `Allocate the widths of the visible tab headers for the given width.

Header text is measured in terminal cells times --cell-width. Contextual
groups are hidden unless named with --contextual.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				tabsOpts.width = opts.cfg.Layout.Width
			}
			if !cmd.Flags().Changed("whitespace") {
				tabsOpts.whitespace = opts.cfg.Layout.Whitespace
			}

			ribbon, err := opts.loadRibbon(args)
			if err != nil {
				return err
			}
			report, err := buildTabsReport(ribbon, *tabsOpts, newCellMeasurer(opts.cellWidth), opts.cfg.Layout.Height)
			if err != nil {
				return err
			}
			opts.logger.Debug("tabs allocated", "step", report.Step, "overflow", report.Overflow)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printTabsReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Float64VarP(&tabsOpts.width, "width", "w", 0, "available width (default from config)")
	cmd.Flags().Float64Var(&tabsOpts.whitespace, "whitespace", 0, "whitespace on each side of a header (default from config)")
	cmd.Flags().StringSliceVarP(&tabsOpts.contextual, "contextual", "c", nil, "contextual groups to show")

	return cmd
}

func buildTabsReport(ribbon *model.Ribbon, opts tabsOptions, m cellMeasurer, height float64) (TabsReport, error) {
	for _, name := range opts.contextual {
		if err := ribbon.SetContextualGroupVisible(name, true); err != nil {
			return TabsReport{}, err
		}
	}

	tabs := ribbon.VisibleTabs()
	items := make([]tabstrip.TabItem, len(tabs))
	for i, tab := range tabs {
		items[i] = tabstrip.TabItem{
			Key:             tab.ID,
			IntrinsicWidth:  m.MeasureLabel(tab.Header) + 2*opts.whitespace,
			IntrinsicHeight: height,
			IsContextual:    tab.IsContextual(),
			Whitespace:      opts.whitespace,
		}
	}

	result := tabstrip.Allocate(tabstrip.LayoutInput{
		Tabs:            items,
		AvailableWidth:  opts.width,
		AvailableHeight: height,
	})

	report := TabsReport{
		Step:           result.Step.String(),
		AvailableWidth: result.AvailableWidth,
		TotalWidth:     result.TotalDesiredWidth,
		Overflow:       result.Overflows(),
		Tabs:           make([]TabRow, len(tabs)),
	}
	for i, tab := range tabs {
		report.Tabs[i] = TabRow{
			Header:          tab.Header,
			ContextualGroup: tab.ContextualGroup,
			IntrinsicWidth:  result.Tabs[i].IntrinsicWidth,
			AssignedWidth:   result.Tabs[i].AssignedWidth,
			Separator:       result.Tabs[i].SeparatorVisible,
		}
	}
	return report, nil
}

func printTabsReport(w io.Writer, report TabsReport) error {
	rows := make([][]string, len(report.Tabs))
	for i, tab := range report.Tabs {
		group := tab.ContextualGroup
		if group == "" {
			group = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			tab.Header,
			group,
			formatWidth(tab.IntrinsicWidth),
			formatWidth(tab.AssignedWidth),
			yesNo(tab.Separator),
		}
	}

	if err := writeTable(w, []string{"#", "Header", "Contextual", "Intrinsic", "Assigned", "Separator"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary("step "+report.Step, report.TotalWidth, report.AvailableWidth, report.Overflow))
	return err
}
