package config

import (
	"math"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyDefinitionPath  = "definition_path"
	KeyTabWhitespace   = "tab_whitespace"
	KeyShowGroupWidths = "show_group_widths"
	KeyAutoReload      = "auto_reload_definition"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultTabWhitespace   = 10.0
	DefaultShowGroupWidths = false
	DefaultAutoReload      = true
)

// Tab whitespace bounds
const (
	MinTabWhitespace = 0.0
	MaxTabWhitespace = 40.0
)

// Settings manages application configuration stored in Fyne preferences
type Settings struct {
	app fyne.App

	whitespaceFallback float64
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, whitespaceFallback: DefaultTabWhitespace}
}

// SetTabWhitespaceDefault sets the whitespace used until the user saves one,
// typically layout.whitespace from the config file
func (s *Settings) SetTabWhitespaceDefault(whitespace float64) {
	s.whitespaceFallback = clampWhitespace(whitespace)
}

// GetDefinitionPath returns the ribbon definition file to open on start.
// An empty path means the built-in definition.
func (s *Settings) GetDefinitionPath() string {
	return s.app.Preferences().String(KeyDefinitionPath)
}

// SetDefinitionPath sets the ribbon definition file
func (s *Settings) SetDefinitionPath(path string) {
	s.app.Preferences().SetString(KeyDefinitionPath, path)
}

// GetTabWhitespace returns the horizontal padding added on each side of a tab header
func (s *Settings) GetTabWhitespace() float64 {
	return clampWhitespace(s.app.Preferences().FloatWithFallback(KeyTabWhitespace, s.whitespaceFallback))
}

// SetTabWhitespace sets the tab header padding
func (s *Settings) SetTabWhitespace(whitespace float64) {
	s.app.Preferences().SetFloat(KeyTabWhitespace, clampWhitespace(whitespace))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowGroupWidths returns whether group boxes show their computed width
func (s *Settings) GetShowGroupWidths() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowGroupWidths, DefaultShowGroupWidths)
}

// SetShowGroupWidths sets whether group boxes show their computed width
func (s *Settings) SetShowGroupWidths(show bool) {
	s.app.Preferences().SetBool(KeyShowGroupWidths, show)
}

// GetAutoReload returns whether the definition file is reloaded when it changes on disk
func (s *Settings) GetAutoReload() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReload, DefaultAutoReload)
}

// SetAutoReload sets whether the definition file is watched for changes
func (s *Settings) SetAutoReload(autoReload bool) {
	s.app.Preferences().SetBool(KeyAutoReload, autoReload)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampWhitespace(whitespace float64) float64 {
	if math.IsNaN(whitespace) || whitespace < MinTabWhitespace {
		return MinTabWhitespace
	}
	if whitespace > MaxTabWhitespace {
		return MaxTabWhitespace
	}
	return whitespace
}
