package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	definitionEntry *widget.Entry
	whitespaceSlide *widget.Slider
	whitespaceLabel *widget.Label
	showWidthsCheck *widget.Check
	autoReloadCheck *widget.Check
	languageSelect  *widget.Select
	languageCodes   map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.definitionEntry = widget.NewEntry()
	sd.definitionEntry.SetPlaceHolder(text(KeyBuiltinDefinition))
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDefinition)
	definitionRow := container.NewBorder(nil, nil, nil, browseBtn, sd.definitionEntry)

	sd.whitespaceLabel = widget.NewLabel("")
	sd.whitespaceSlide = widget.NewSlider(config.MinTabWhitespace, config.MaxTabWhitespace)
	sd.whitespaceSlide.Step = 1
	sd.whitespaceSlide.OnChanged = func(value float64) {
		sd.whitespaceLabel.SetText(fmt.Sprintf(WidthLabelFormat, value))
	}
	whitespaceRow := container.NewBorder(nil, nil, nil, sd.whitespaceLabel, sd.whitespaceSlide)

	sd.showWidthsCheck = widget.NewCheck(text(KeyShowGroupWidths), nil)
	sd.autoReloadCheck = widget.NewCheck(text(KeyAutoReload), nil)

	// Select shows display names; map them back to codes on save
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyDefinitionPath)+":"),
		definitionRow,
		sd.autoReloadCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyTabWhitespace)+":"),
		whitespaceRow,
		sd.showWidthsCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.definitionEntry.SetText(sd.settings.GetDefinitionPath())
	sd.whitespaceSlide.SetValue(sd.settings.GetTabWhitespace())
	sd.whitespaceLabel.SetText(fmt.Sprintf(WidthLabelFormat, sd.settings.GetTabWhitespace()))
	sd.showWidthsCheck.SetChecked(sd.settings.GetShowGroupWidths())
	sd.autoReloadCheck.SetChecked(sd.settings.GetAutoReload())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseDefinition picks a definition file, starting in the definitions directory
func (sd *SettingsDialog) onBrowseDefinition() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.definitionEntry.SetText(reader.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.DefinitionExtensions))

	if dir, err := platform.GetDefinitionsDir(); err == nil {
		if err := platform.CreateDirectoryIfNotExists(dir); err == nil {
			if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
				fd.SetLocation(lister)
			}
		}
	}
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetDefinitionPath(sd.definitionEntry.Text)
	sd.settings.SetTabWhitespace(sd.whitespaceSlide.Value)
	sd.settings.SetShowGroupWidths(sd.showWidthsCheck.Checked)
	sd.settings.SetAutoReload(sd.autoReloadCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
