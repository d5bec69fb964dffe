// Package ui contains the Fyne host for the ribbon layout engines: a tab
// strip that shrinks headers under width pressure, a bar of group boxes that
// follow their tab's reduce order, the settings dialog and the main window.
// All UI strings are localized via Localization.
package ui
