package tui

import (
	"fmt"
	"strconv"
	"strings"

	"nsfgrants/internal/config"
	"nsfgrants/internal/model"
	"nsfgrants/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	dataDir string
	year    string
	theme   string
}

// newSetupForm builds the first-run configuration form shown once data has
// loaded and no config file exists yet.
func newSetupForm(grantCount int, dataDir string, vals *setupValues) *huh.Form {
	vals.dataDir = dataDir
	vals.year = strconv.Itoa(model.LastYear)
	vals.theme = theme.Active.Name

	yearOpts := make([]huh.Option[string], 0, model.LastYear-model.FirstYear+1)
	for y := model.FirstYear; y <= model.LastYear; y++ {
		yearOpts = append(yearOpts, huh.NewOption(strconv.Itoa(y), strconv.Itoa(y)))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to nsfgrants").
				Description(fmt.Sprintf("Loaded %d grants from %s.\nA few settings before the dashboard starts.", grantCount, dataDir)),

			huh.NewInput().
				Title("Data directory").
				Description("Where the yearly exports and CSV inputs live.").
				Value(&vals.dataDir),

			huh.NewSelect[string]().
				Title("Default year").
				Description("Initial year for the map and alignment views.").
				Options(yearOpts...).
				Value(&vals.year),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeBase16())
}

// saveSetupConfig persists the form answers and applies them in-session.
func (a *App) saveSetupConfig() error {
	cfg := config.DefaultConfig()

	if dir := strings.TrimSpace(a.setupVals.dataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if y, err := strconv.Atoi(a.setupVals.year); err == nil && y >= model.FirstYear && y <= model.LastYear {
		cfg.General.DefaultYear = y
		a.year = y
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}

	return config.Save(cfg)
}
