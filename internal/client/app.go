package client

import (
	"context"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/tui"
)

// App is the interactive client application: the terminal UI wired to the
// client services.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating client app...")

	return &App{
		services: services,
		tui:      ui,
		logger:   logger,
	}, nil
}

// Run drives the interactive session until the user quits.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if err := a.tui.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("interactive session ended with error")
		return err
	}

	a.logger.Info().Msg("client app finished")
	return nil
}
