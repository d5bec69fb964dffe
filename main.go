package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/config"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/platform"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.github.fluentribbon.layout"
	AppName = "Ribbon Layout"

	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "RIBBON_CONFIG"
)

func main() {
	cfg, err := config.Load(os.Getenv(EnvConfigFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoResource)
	myApp.Settings().SetTheme(ui.NewRibbonTheme())

	settings := config.NewSettings(myApp)
	settings.SetTabWhitespaceDefault(cfg.Layout.Whitespace)
	ribbon, path := loadRibbon(settings, cfg, logger)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRibbonUI(myWindow, settings, ribbon, path,
		ui.WithWatchDebounce(cfg.Definition.Debounce),
		ui.WithAutoReload(cfg.Definition.Watch),
	)

	myWindow.ShowAndRun()
}

// loadRibbon picks the definition from preferences, then the config file,
// then the definitions directory, falling back to the built-in one
func loadRibbon(settings *config.Settings, cfg config.Config, logger *slog.Logger) (*model.Ribbon, string) {
	path := settings.GetDefinitionPath()
	if path == "" {
		path = cfg.Definition.Path
	}
	if path == "" {
		if dir, err := platform.GetDefinitionsDir(); err == nil {
			found, err := platform.FindDefinitionFile(dir)
			switch {
			case err == nil:
				path = found
			case !errors.Is(err, platform.ErrNoDefinition):
				logger.Debug("no definitions directory", "dir", dir, "error", err)
			}
		}
	}

	if path != "" {
		ribbon, err := config.LoadDefinition(path)
		if err == nil {
			logger.Info("definition loaded", "path", path, "tabs", len(ribbon.Tabs))
			return ribbon, path
		}
		logger.Error("failed to load definition, using built-in", "path", path, "error", err)
	}

	ribbon, err := config.DefaultDefinition()
	if err != nil {
		logger.Error("built-in definition is invalid", "error", err)
		ribbon = model.NewRibbon(AppName)
	}
	return ribbon, ""
}
