package ui

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/platform"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/tabstrip"
)

// RibbonUI represents the main window content: tab strip, group boxes and a status line
type RibbonUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	ribbon         *model.Ribbon
	definitionPath string
	watcher        *config.DefinitionWatcher
	debounce       time.Duration
	autoReload     bool

	tabStrip    *TabStrip
	groupsBar   *GroupsBar
	statusLabel *widget.Label
	notice      string

	statusMutex      sync.Mutex
	lastStatusUpdate time.Time
	statusPending    bool
}

// Option configures a RibbonUI
type Option func(*RibbonUI)

// WithWatchDebounce sets how long definition changes settle before a reload
func WithWatchDebounce(d time.Duration) Option {
	return func(ui *RibbonUI) {
		ui.debounce = d
	}
}

// WithAutoReload enables or disables watching the definition file. Watching
// also needs the auto reload preference to be on.
func WithAutoReload(enabled bool) Option {
	return func(ui *RibbonUI) {
		ui.autoReload = enabled
	}
}

// NewRibbonUI creates the main UI for ribbon. definitionPath is the file the
// ribbon was loaded from, empty for the built-in definition.
func NewRibbonUI(window fyne.Window, settings *config.Settings, ribbon *model.Ribbon, definitionPath string, opts ...Option) *RibbonUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RibbonUI{
		window:         window,
		settings:       settings,
		localization:   localization,
		logger:         slog.Default().With("component", "ui"),
		ribbon:         ribbon,
		definitionPath: definitionPath,
		debounce:       config.DefaultDebounce,
		autoReload:     true,
	}
	for _, opt := range opts {
		opt(ui)
	}

	ui.setupUI()
	ui.applyRibbon(ribbon)
	ui.startWatching()

	window.SetOnClosed(ui.stopWatching)
	return ui
}

// Ribbon returns the displayed ribbon
func (ui *RibbonUI) Ribbon() *model.Ribbon {
	return ui.ribbon
}

// TabStrip returns the tab strip widget
func (ui *RibbonUI) TabStrip() *TabStrip {
	return ui.tabStrip
}

// GroupsBar returns the group boxes widget
func (ui *RibbonUI) GroupsBar() *GroupsBar {
	return ui.groupsBar
}

// StatusText returns the status line text
func (ui *RibbonUI) StatusText() string {
	return ui.statusLabel.Text
}

// setupUI creates and arranges all UI components
func (ui *RibbonUI) setupUI() {
	ui.createMenu()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.tabStrip = NewTabStrip(float32(ui.settings.GetTabWhitespace()))
	ui.tabStrip.OnSelected = ui.onTabSelected

	ui.groupsBar = NewGroupsBar()
	ui.groupsBar.SetShowWidths(ui.settings.GetShowGroupWidths())
	ui.groupsBar.OnControlTapped = func(group, control string) {
		ui.logger.Info("control tapped", "group", group, "control", control)
	}
	ui.tabStrip.OnArranged = func(tabstrip.LayoutResult) { ui.observeLayout() }
	ui.groupsBar.OnFitted = func(groupbox.Layout) { ui.observeLayout() }

	ribbonArea := container.NewBorder(ui.tabStrip, nil, nil, nil, ui.groupsBar)
	content := container.NewBorder(ribbonArea, ui.statusLabel, nil, nil)

	ui.window.SetTitle(ui.title())
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RibbonUI) createMenu() {
	text := ui.localization.GetText

	openItem := fyne.NewMenuItem(text(KeyOpenDefinition), ui.onOpenDefinition)
	reloadItem := fyne.NewMenuItem(text(KeyReloadDefinition), func() { ui.loadDefinition(ui.definitionPath) })
	editItem := fyne.NewMenuItem(text(KeyEditDefinition), ui.onEditDefinition)
	revealItem := fyne.NewMenuItem(text(KeyRevealDefinition), ui.onRevealDefinition)
	if ui.definitionPath == "" {
		editItem.Disabled = true
		revealItem.Disabled = true
	}
	settingsItem := fyne.NewMenuItem(IconSettings+" "+text(KeySettings), ui.onShowSettings)

	fileMenu := fyne.NewMenu(text(KeyFile),
		openItem, reloadItem, editItem, revealItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
	)

	contextualMenu := fyne.NewMenuItem(text(KeyContextualGroups), nil)
	if ui.ribbon != nil {
		for _, group := range ui.ribbon.ContextualGroups {
			name := group.Name
			item := fyne.NewMenuItem(group.Header, func() { ui.onToggleContextual(name) })
			item.Checked = group.Visible
			contextualMenu.ChildMenu = appendMenuItem(contextualMenu.ChildMenu, item)
		}
	}
	if contextualMenu.ChildMenu == nil {
		contextualMenu.Disabled = true
	}
	viewMenu := fyne.NewMenu(text(KeyView), contextualMenu)

	languageMenu := fyne.NewMenu(text(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		item := fyne.NewMenuItem(languages[code], func() { ui.onLanguageChange(langCode) })
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

func appendMenuItem(menu *fyne.Menu, item *fyne.MenuItem) *fyne.Menu {
	if menu == nil {
		return fyne.NewMenu("", item)
	}
	menu.Items = append(menu.Items, item)
	return menu
}

func (ui *RibbonUI) title() string {
	source := ui.localization.GetText(KeyBuiltinDefinition)
	if ui.definitionPath != "" {
		source = ui.definitionPath
	}
	name := ui.localization.GetText(KeyAppTitle)
	if ui.ribbon != nil && ui.ribbon.Title != "" {
		name = ui.ribbon.Title + MiddleDotSeparator + name
	}
	return fmt.Sprintf("%s (%s)", name, source)
}

// applyRibbon shows ribbon, keeping the visibility of contextual groups
// that survive a reload
func (ui *RibbonUI) applyRibbon(ribbon *model.Ribbon) {
	if ui.ribbon != nil && ui.ribbon != ribbon {
		for _, old := range ui.ribbon.ContextualGroups {
			if group, ok := ribbon.FindContextualGroup(old.Name); ok {
				group.Visible = old.Visible
			}
		}
	}
	ui.ribbon = ribbon

	ui.refreshTabs()
	ui.createMenu()
	ui.window.SetTitle(ui.title())
}

func (ui *RibbonUI) refreshTabs() {
	ui.tabStrip.SetTabs(ui.ribbon.VisibleTabs(), ui.ribbon.ContextualGroups)
	ui.showGroups(ui.tabStrip.Selected())
	ui.updateStatus()
}

func (ui *RibbonUI) showGroups(tab *model.Tab) {
	if err := ui.groupsBar.SetTab(tab); err != nil {
		ui.logger.Warn("cannot lay out group boxes", "error", err)
		dialog.ShowError(err, ui.window)
	}
}

// onTabSelected shows the group boxes of the selected tab
func (ui *RibbonUI) onTabSelected(tab *model.Tab) {
	ui.logger.Debug("tab selected", "tab", tab.Header)
	ui.notice = ""
	ui.showGroups(tab)
	ui.updateStatus()
}

// onToggleContextual shows or hides a contextual tab group
func (ui *RibbonUI) onToggleContextual(name string) {
	group, ok := ui.ribbon.FindContextualGroup(name)
	if !ok {
		return
	}
	if err := ui.ribbon.SetContextualGroupVisible(name, !group.Visible); err != nil {
		ui.logger.Warn("toggle contextual group", "group", name, "error", err)
		return
	}

	ui.refreshTabs()
	ui.createMenu()
}

// observeLayout refreshes the status line after the widgets were arranged.
// Layout passes closer than UIUpdateDebounce are folded into one trailing update.
func (ui *RibbonUI) observeLayout() {
	ui.statusMutex.Lock()
	if ui.statusPending {
		ui.statusMutex.Unlock()
		return
	}
	wait := UIUpdateDebounce - time.Since(ui.lastStatusUpdate)
	if wait > 0 {
		ui.statusPending = true
		ui.statusMutex.Unlock()
		time.AfterFunc(wait, func() { fyne.Do(ui.flushStatus) })
		return
	}
	ui.statusMutex.Unlock()

	ui.updateStatus()
}

func (ui *RibbonUI) flushStatus() {
	ui.statusMutex.Lock()
	ui.statusPending = false
	ui.statusMutex.Unlock()

	ui.updateStatus()
}

// updateStatus rewrites the status line now
func (ui *RibbonUI) updateStatus() {
	ui.statusMutex.Lock()
	ui.lastStatusUpdate = time.Now()
	ui.statusMutex.Unlock()

	text := ui.statusText(ui.tabStrip.Result(), ui.groupsBar.Fitted())
	if text != ui.statusLabel.Text {
		ui.statusLabel.SetText(text)
	}
}

// showNotice appends message to the status line until the next tab selection
func (ui *RibbonUI) showNotice(message string) {
	ui.notice = message
	ui.updateStatus()
}

func (ui *RibbonUI) statusText(tabs tabstrip.LayoutResult, groups groupbox.Layout) string {
	text := ui.localization.GetText
	if len(ui.tabStrip.Tabs()) == 0 {
		return text(KeyNoTabs)
	}

	parts := []string{fmt.Sprintf("%s: %s", text(KeyStatusTabs), tabs.Step)}
	if tabs.Overflows() {
		parts[0] += " (" + text(KeyOverflow) + ")"
	}

	order := 0
	if tab := ui.groupsBar.Tab(); tab != nil {
		if steps, err := groupbox.ParseReduceOrder(tab.ReduceOrder); err == nil {
			order = len(steps)
		}
	}
	groupPart := fmt.Sprintf("%s: %d/%d", text(KeyStatusGroups), groups.StepsApplied, order)
	if groups.Overflows() {
		groupPart += " (" + text(KeyOverflow) + ")"
	}
	parts = append(parts, groupPart)
	if ui.notice != "" {
		parts = append(parts, ui.notice)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// loadDefinition loads path, or the built-in definition for an empty path
func (ui *RibbonUI) loadDefinition(path string) {
	var (
		ribbon *model.Ribbon
		err    error
	)
	if path == "" {
		ribbon, err = config.DefaultDefinition()
	} else {
		ribbon, err = config.LoadDefinition(path)
	}
	if err != nil {
		ui.logger.Error("load definition", "path", path, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLoading), err), ui.window)
		return
	}

	changed := path != ui.definitionPath
	ui.definitionPath = path
	ui.applyRibbon(ribbon)
	if changed {
		ui.stopWatching()
		ui.startWatching()
	}
}

// onOpenDefinition lets the user pick a definition file
func (ui *RibbonUI) onOpenDefinition() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		ui.loadDefinition(path)
		if ui.definitionPath == path {
			ui.settings.SetDefinitionPath(path)
		}
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.DefinitionExtensions))
	fd.Show()
}

// onRevealDefinition shows the definition file in the system file manager
func (ui *RibbonUI) onRevealDefinition() {
	if err := platform.OpenFileInManager(ui.definitionPath); err != nil {
		ui.logger.Error("reveal definition", "path", ui.definitionPath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onEditDefinition opens the definition file with the default application
func (ui *RibbonUI) onEditDefinition() {
	if err := platform.OpenFileWithDefaultApp(ui.definitionPath); err != nil {
		ui.logger.Error("edit definition", "path", ui.definitionPath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// startWatching reloads the definition when its file changes on disk
func (ui *RibbonUI) startWatching() {
	if ui.definitionPath == "" || !ui.autoReload || !ui.settings.GetAutoReload() {
		return
	}

	var watcher *config.DefinitionWatcher
	watcher, err := config.WatchDefinition(ui.definitionPath, func(ribbon *model.Ribbon, err error) {
		fyne.Do(func() { ui.onDefinitionChanged(watcher, ribbon, err) })
	}, config.WithLogger(ui.logger), config.WithDebounce(ui.debounce))
	if err != nil {
		ui.logger.Warn("cannot watch definition", "path", ui.definitionPath, "error", err)
		return
	}
	ui.watcher = watcher
}

// onDefinitionChanged applies a reload from source. Reloads from a watcher
// that was replaced or stopped are dropped.
func (ui *RibbonUI) onDefinitionChanged(source *config.DefinitionWatcher, ribbon *model.Ribbon, err error) {
	if source == nil || source != ui.watcher {
		ui.logger.Debug("dropping reload from a stopped watcher")
		return
	}
	if err != nil {
		ui.showNotice(ui.localization.GetText(KeyErrorLoading) + ": " + err.Error())
		return
	}
	ui.notice = ui.localization.GetText(KeyDefinitionReloaded)
	ui.applyRibbon(ribbon)
}

func (ui *RibbonUI) stopWatching() {
	if ui.watcher == nil {
		return
	}
	if err := ui.watcher.Close(); err != nil {
		ui.logger.Warn("stop watching definition", "error", err)
	}
	ui.watcher = nil
}

// onShowSettings shows the settings dialog
func (ui *RibbonUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed settings to the running UI
func (ui *RibbonUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.tabStrip.SetWhitespace(float32(ui.settings.GetTabWhitespace()))
	ui.groupsBar.SetShowWidths(ui.settings.GetShowGroupWidths())

	if path := ui.settings.GetDefinitionPath(); path != ui.definitionPath {
		ui.loadDefinition(path)
	} else {
		ui.stopWatching()
		ui.startWatching()
	}
	ui.refreshUITexts()
}

// onLanguageChange handles language change
func (ui *RibbonUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RibbonUI) refreshUITexts() {
	ui.window.SetTitle(ui.title())
	ui.createMenu()
	ui.updateStatus()
}
