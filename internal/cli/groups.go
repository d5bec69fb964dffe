package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// GroupRow is one group box in the groups report
type GroupRow struct {
	Name     string            `json:"name"`
	State    string            `json:"state"`
	Scale    int               `json:"scale"`
	Width    float64           `json:"width"`
	Controls map[string]string `json:"controls"`
}

// GroupsReport is the outcome of fitting the group boxes of one tab
type GroupsReport struct {
	Tab            string     `json:"tab"`
	ReduceOrder    string     `json:"reduce_order"`
	StepsApplied   int        `json:"steps_applied"`
	Steps          int        `json:"steps"`
	AvailableWidth float64    `json:"available_width"`
	TotalWidth     float64    `json:"total_width"`
	Overflow       bool       `json:"overflow"`
	Groups         []GroupRow `json:"groups"`
}

type groupsOptions struct {
	tab   string
	width float64
}

func newGroupsCmd(opts *options) *cobra.Command {
	groupsOpts := &groupsOptions{}

	cmd := &cobra.Command{
		Use:   "groups [definition]",
		Short: "Fit the group boxes of a tab",
		Long: `Fit the group boxes of a tab into the given width by applying the
shortest prefix of the tab's reduce order that fits.

The first visible tab is used unless --tab names a header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				groupsOpts.width = opts.cfg.Layout.Width
			}

			ribbon, err := opts.loadRibbon(args)
			if err != nil {
				return err
			}
			report, err := buildGroupsReport(ribbon, *groupsOpts, newCellMeasurer(opts.cellWidth))
			if err != nil {
				return err
			}
			opts.logger.Debug("groups fitted", "tab", report.Tab, "steps", report.StepsApplied, "overflow", report.Overflow)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printGroupsReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&groupsOpts.tab, "tab", "t", "", "tab header (default first visible tab)")
	cmd.Flags().Float64VarP(&groupsOpts.width, "width", "w", 0, "available width (default from config)")

	return cmd
}

func buildGroupsReport(ribbon *model.Ribbon, opts groupsOptions, m groupbox.Measurer) (GroupsReport, error) {
	tab, err := pickTab(ribbon, opts.tab)
	if err != nil {
		return GroupsReport{}, err
	}

	order, err := groupbox.ParseReduceOrder(tab.ReduceOrder)
	if err != nil {
		return GroupsReport{}, fmt.Errorf("tab %s: %w", tab.Header, err)
	}
	groups, err := groupbox.FromModel(tab.Groups, m, groupbox.DefaultMetrics())
	if err != nil {
		return GroupsReport{}, fmt.Errorf("tab %s: %w", tab.Header, err)
	}

	layout := groupbox.Fit(groups, order, opts.width)
	report := GroupsReport{
		Tab:            tab.Header,
		ReduceOrder:    groupbox.FormatReduceOrder(order),
		StepsApplied:   layout.StepsApplied,
		Steps:          len(order),
		AvailableWidth: layout.AvailableWidth,
		TotalWidth:     layout.TotalWidth,
		Overflow:       layout.Overflows(),
		Groups:         make([]GroupRow, len(layout.Groups)),
	}
	for i, gl := range layout.Groups {
		controls := make(map[string]string, len(gl.Controls))
		for _, c := range gl.Controls {
			controls[c.Name] = c.Size.String()
		}
		report.Groups[i] = GroupRow{
			Name:     gl.Name,
			State:    gl.State.String(),
			Scale:    gl.Scale,
			Width:    gl.Width,
			Controls: controls,
		}
	}
	return report, nil
}

func pickTab(ribbon *model.Ribbon, header string) (*model.Tab, error) {
	if header != "" {
		tab, ok := ribbon.FindTabByHeader(header)
		if !ok {
			return nil, fmt.Errorf("tab %q: %w", header, model.ErrTabNotFound)
		}
		return tab, nil
	}
	visible := ribbon.VisibleTabs()
	if len(visible) == 0 {
		return nil, fmt.Errorf("definition has no visible tabs: %w", model.ErrTabNotFound)
	}
	return visible[0], nil
}

func printGroupsReport(w io.Writer, report GroupsReport) error {
	rows := make([][]string, len(report.Groups))
	for i, g := range report.Groups {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			g.Name,
			g.State,
			strconv.Itoa(g.Scale),
			formatWidth(g.Width),
			controlSizes(g.Controls),
		}
	}

	if err := writeTable(w, []string{"#", "Group", "State", "Scale", "Width", "Controls"}, rows); err != nil {
		return err
	}
	label := fmt.Sprintf("%s: %d/%d steps", report.Tab, report.StepsApplied, report.Steps)
	_, err := fmt.Fprintln(w, summary(label, report.TotalWidth, report.AvailableWidth, report.Overflow))
	return err
}

// controlSizes counts controls per size, e.g. "Large 1, Small 3"
func controlSizes(controls map[string]string) string {
	counts := make(map[string]int)
	for _, size := range controls {
		counts[size]++
	}
	parts := make([]string, 0, len(counts))
	for _, size := range []model.ControlSize{model.ControlSizeLarge, model.ControlSizeMiddle, model.ControlSizeSmall} {
		if n := counts[size.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", size, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
