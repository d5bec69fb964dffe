package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

const testDefinition = `title: Test Editor
contextual_groups:
  - {name: table, header: Table Tools}
tabs:
  - header: Home
    groups:
      - name: Clipboard
        controls:
          - {name: paste, label: Paste}
  - header: View
  - header: Design
    contextual: table
`

func newTestUI(t *testing.T, a fyne.App, path string, opts ...Option) (*RibbonUI, fyne.Window) {
	t.Helper()
	settings := config.NewSettings(a)
	settings.SetLanguage("en")

	var (
		ribbon *model.Ribbon
		err    error
	)
	if path == "" {
		ribbon, err = config.DefaultDefinition()
	} else {
		ribbon, err = config.LoadDefinition(path)
	}
	require.NoError(t, err)

	w := test.NewWindow(nil)
	ui := NewRibbonUI(w, settings, ribbon, path, opts...)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return ui, w
}

func TestRibbonUIBuiltinDefinition(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ui, w := newTestUI(t, a, "")
	defer w.Close()

	require.NotEmpty(t, ui.TabStrip().Tabs())
	assert.Equal(t, "Home", ui.TabStrip().Selected().Header)
	assert.Equal(t, ui.TabStrip().Selected(), ui.GroupsBar().Tab())
	assert.Contains(t, ui.StatusText(), "Tabs: ")
	assert.Contains(t, ui.StatusText(), "Groups: ")
	assert.Contains(t, w.Title(), "built-in definition")
}

func TestRibbonUIContextualToggle(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ui, w := newTestUI(t, a, "")
	defer w.Close()

	regular := len(ui.TabStrip().Tabs())

	ui.onToggleContextual("table")
	tabs := ui.TabStrip().Tabs()
	require.Len(t, tabs, regular+2)
	assert.Equal(t, "table", tabs[regular].ContextualGroup)
	assert.Equal(t, "Home", ui.TabStrip().Selected().Header, "selection is kept")

	ui.TabStrip().Select(tabs[regular].ID)
	ui.onToggleContextual("table")
	assert.Len(t, ui.TabStrip().Tabs(), regular)
	assert.Equal(t, "Home", ui.TabStrip().Selected().Header, "hidden selection falls back to the first tab")

	ui.onToggleContextual("missing")
	assert.Len(t, ui.TabStrip().Tabs(), regular)
}

func TestRibbonUISelectShowsGroups(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ui, w := newTestUI(t, a, "")
	defer w.Close()

	insert, ok := ui.Ribbon().FindTabByHeader("Insert")
	require.True(t, ok)

	ui.showNotice("hello")
	assert.Contains(t, ui.StatusText(), "hello")

	ui.onTabSelected(insert)
	assert.Equal(t, insert, ui.GroupsBar().Tab())
	assert.NotContains(t, ui.StatusText(), "hello", "selecting a tab clears the notice")
}

func TestRibbonUIReloadKeepsContextualState(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	ui, w := newTestUI(t, a, path)
	defer w.Close()
	assert.Contains(t, w.Title(), "Test Editor")

	ui.onToggleContextual("table")
	require.Len(t, ui.TabStrip().Tabs(), 3)

	ui.loadDefinition(path)
	group, ok := ui.Ribbon().FindContextualGroup("table")
	require.True(t, ok)
	assert.True(t, group.Visible)
	assert.Len(t, ui.TabStrip().Tabs(), 3)

	// a broken path keeps the current ribbon
	current := ui.Ribbon()
	ui.loadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Same(t, current, ui.Ribbon())
}

func TestRibbonUIWatchesDefinition(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	ui, w := newTestUI(t, a, path, WithWatchDebounce(50*time.Millisecond))
	defer w.Close()
	require.NotNil(t, ui.watcher)

	updated := testDefinition + "  - header: Review\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		_, ok := ui.Ribbon().FindTabByHeader("Review")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	ui.stopWatching()
	assert.Nil(t, ui.watcher)
}

func TestRibbonUIAutoReloadDisabled(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	ui, w := newTestUI(t, a, path, WithAutoReload(false))
	defer w.Close()
	assert.Nil(t, ui.watcher)

	ui.onSettingsSaved()
	assert.Nil(t, ui.watcher, "the preference alone does not turn watching on")
}

func TestRibbonUIDropsReloadFromStoppedWatcher(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	ui, w := newTestUI(t, a, path)
	defer w.Close()
	require.NotNil(t, ui.watcher)

	stale, err := config.WatchDefinition(path, nil)
	require.NoError(t, err)
	require.NoError(t, stale.Close())

	other, err := config.ParseDefinition([]byte("title: Other\ntabs:\n  - header: Mail\n"), config.FormatYAML)
	require.NoError(t, err)

	current := ui.Ribbon()
	ui.onDefinitionChanged(stale, other, nil)
	assert.Same(t, current, ui.Ribbon())
	ui.onDefinitionChanged(nil, other, nil)
	assert.Same(t, current, ui.Ribbon())

	ui.onDefinitionChanged(ui.watcher, other, nil)
	assert.Same(t, other, ui.Ribbon())
	assert.Contains(t, ui.StatusText(), "reloaded")
}

func TestRibbonUIReloadKeepsSelectedTab(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "ribbon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	ui, w := newTestUI(t, a, path)
	defer w.Close()

	view, ok := ui.Ribbon().FindTabByHeader("View")
	require.True(t, ok)
	ui.TabStrip().Select(view.ID)
	ui.onTabSelected(view)

	ui.loadDefinition(path)
	assert.NotSame(t, view, ui.TabStrip().Selected())
	assert.Equal(t, "View", ui.TabStrip().Selected().Header)
	assert.Equal(t, ui.TabStrip().Selected(), ui.GroupsBar().Tab())
}

func TestRibbonUIThrottlesLayoutStatus(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ui, w := newTestUI(t, a, "")
	defer w.Close()

	// let updates queued by the initial layout run
	time.Sleep(2 * UIUpdateDebounce)

	ui.updateStatus()
	ui.notice = "queued"
	ui.observeLayout()
	ui.observeLayout()
	assert.NotContains(t, ui.StatusText(), "queued")

	assert.Eventually(t, func() bool {
		return strings.Contains(ui.StatusText(), "queued")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSettingsDialogApply(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ui, w := newTestUI(t, a, "")
	defer w.Close()

	saved := false
	sd := NewSettingsDialog(ui.settings, ui.localization, w, func() { saved = true })
	sd.loadCurrentSettings()
	assert.InDelta(t, config.DefaultTabWhitespace, sd.whitespaceSlide.Value, 0.001)

	sd.whitespaceSlide.SetValue(4)
	sd.showWidthsCheck.SetChecked(true)
	sd.languageSelect.SetSelected("Português")
	sd.apply()

	assert.True(t, saved)
	assert.InDelta(t, 4.0, ui.settings.GetTabWhitespace(), 0.001)
	assert.True(t, ui.settings.GetShowGroupWidths())
	assert.Equal(t, "pt", ui.settings.GetLanguage())

	ui.onSettingsSaved()
	assert.Equal(t, "pt", ui.localization.GetCurrentLanguage())
	assert.Contains(t, ui.StatusText(), "Guias")
	assert.InDelta(t, 4.0, ui.TabStrip().Result().Tabs[0].Whitespace, 0.001)
}
