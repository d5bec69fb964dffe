package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

const fixture = `title: Fixture
contextual_groups:
  - {name: table, header: Table Tools}
tabs:
  - header: Home
    reduce_order: "Font,Clipboard"
    groups:
      - name: Clipboard
        controls:
          - {name: paste, label: Paste}
      - name: Font
        controls:
          - {name: bold, label: Bold, size: "Middle, Small"}
          - {name: italic, label: Italic, size: "Middle, Small"}
  - header: Insert
  - header: Design
    contextual: table
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RIBBON_CONFIG_DIR", t.TempDir())
	t.Setenv("RIBBON_CONFIG", "")

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	return path
}

func TestTabsBuiltin(t *testing.T) {
	out, err := run(t, "tabs", "--width", "5000", "--json")
	require.NoError(t, err)

	var report TabsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "fit", report.Step)
	assert.False(t, report.Overflow)
	require.NotEmpty(t, report.Tabs)
	assert.Equal(t, "Home", report.Tabs[0].Header)
	for _, tab := range report.Tabs {
		assert.Empty(t, tab.ContextualGroup, "contextual groups start hidden")
		assert.Equal(t, tab.IntrinsicWidth, tab.AssignedWidth)
		assert.False(t, tab.Separator)
	}
}

func TestTabsContextual(t *testing.T) {
	out, err := run(t, "tabs", "--width", "5000", "--contextual", "table,picture", "--json")
	require.NoError(t, err)

	var report TabsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	groups := []string{}
	for _, tab := range report.Tabs {
		if tab.ContextualGroup != "" {
			groups = append(groups, tab.ContextualGroup)
		}
	}
	assert.Equal(t, []string{"table", "table", "picture"}, groups)

	_, err = run(t, "tabs", "--contextual", "missing")
	assert.Error(t, err)
}

func TestTabsEqualize(t *testing.T) {
	path := writeFixture(t)

	// Home 40, Insert 60 without whitespace
	out, err := run(t, "tabs", path, "--width", "80", "--whitespace", "0", "--cell-width", "10", "--json")
	require.NoError(t, err)

	var report TabsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "regular-equalize", report.Step)
	require.Len(t, report.Tabs, 2)
	assert.InDelta(t, 40, report.Tabs[0].AssignedWidth, 0.001)
	assert.InDelta(t, 40, report.Tabs[1].AssignedWidth, 0.001)
	assert.True(t, report.Tabs[0].Separator)
	assert.False(t, report.Overflow)
}

func TestTabsTable(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "tabs", path, "--width", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Header")
	assert.Contains(t, out, "Insert")
	assert.Contains(t, out, "step fit")
}

func TestTabsConfigDefaults(t *testing.T) {
	path := writeFixture(t)
	t.Setenv("RIBBON_CONFIG_DIR", t.TempDir())
	t.Setenv("RIBBON_CONFIG", "")
	t.Setenv("RIBBON_LAYOUT_WIDTH", "123")

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tabs", path, "--json"})
	require.NoError(t, cmd.Execute())

	var report TabsReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.InDelta(t, 123, report.AvailableWidth, 0.001)
}

func TestGroups(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "groups", path, "--tab", "Home", "--width", "5000", "--json")
	require.NoError(t, err)

	var report GroupsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Home", report.Tab)
	assert.Equal(t, 0, report.StepsApplied)
	assert.Equal(t, 2, report.Steps)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, "Large", report.Groups[0].State)
	assert.Equal(t, "Middle", report.Groups[1].Controls["bold"])

	out, err = run(t, "groups", path, "--width", "1", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.StepsApplied)
	assert.True(t, report.Overflow)
	assert.Equal(t, "Middle", report.Groups[1].State)
	assert.Equal(t, "Small", report.Groups[1].Controls["italic"])
}

func TestGroupsErrors(t *testing.T) {
	path := writeFixture(t)

	_, err := run(t, "groups", path, "--tab", "Missing")
	assert.ErrorIs(t, err, model.ErrTabNotFound)

	_, err = run(t, "groups", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "groups", filepath.Join(t.TempDir(), "ribbon.json"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestGroupsSkipsHiddenTabs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	data := `tabs:
  - header: Backstage
    hidden: true
  - header: Design
    contextual: table
  - header: Home
contextual_groups:
  - {name: table}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "groups", path, "--width", "5000", "--json")
	require.NoError(t, err)
	var report GroupsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Home", report.Tab)

	hidden := "tabs:\n  - header: Backstage\n    hidden: true\n"
	require.NoError(t, os.WriteFile(path, []byte(hidden), 0o644))
	_, err = run(t, "groups", path)
	assert.ErrorIs(t, err, model.ErrTabNotFound)
}

func TestGroupsTable(t *testing.T) {
	out, err := run(t, "groups", "--tab", "Insert", "--width", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "Illustrations")
	assert.Contains(t, out, "Insert: 0/6 steps")
}

func TestConvert(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "convert", path, "--to", "toml")
	require.NoError(t, err)
	ribbon, err := config.ParseDefinition([]byte(out), config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "Fixture", ribbon.Title)
	assert.Len(t, ribbon.Tabs, 3)

	target := filepath.Join(t.TempDir(), "ribbon.toml")
	_, err = run(t, "convert", path, "-o", target)
	require.NoError(t, err)
	ribbon, err = config.LoadDefinition(target)
	require.NoError(t, err)
	assert.Equal(t, "Fixture", ribbon.Title)

	_, err = run(t, "convert", path, "--to", "xml")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestCellMeasurer(t *testing.T) {
	m := newCellMeasurer(7)
	assert.InDelta(t, 28, m.MeasureLabel("Home"), 0.001)
	assert.InDelta(t, 28, m.MeasureLabel("日本"), 0.001, "wide runes take two cells")
	assert.InDelta(t, 0, m.MeasureLabel(""), 0.001)

	assert.InDelta(t, DefaultCellWidth, newCellMeasurer(0).MeasureLabel("a"), 0.001)
}

func TestControlSizes(t *testing.T) {
	assert.Equal(t, "-", controlSizes(nil))
	assert.Equal(t, "Large 1, Small 2", controlSizes(map[string]string{"a": "Large", "b": "Small", "c": "Small"}))
}
