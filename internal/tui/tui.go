// Package tui implements the interactive terminal UI of the example client:
// a menu-driven flow that acquires assets through the picker capabilities,
// uploads them with a chosen completion policy, and browses the local upload
// history.
//
// The package also ships interactive file-browser implementations of the
// [picker.Gallery] and [picker.Documents] capabilities; see browser.go.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	provider  *picker.Provider
	defaults  config.ClientUploader
	buildInfo models.BuildInfo
}

func New(services *service.ClientServices, provider *picker.Provider, defaults config.ClientUploader, buildInfo models.BuildInfo) (*TUI, error) {
	return &TUI{
		services:  services,
		provider:  provider,
		defaults:  defaults,
		buildInfo: buildInfo,
	}, nil
}

// Run drives the whole interactive session: menu → pick → upload → result,
// looping until the user quits. Each screen is its own bubbletea program so
// that interactive pickers, which own the terminal themselves, can run in
// between.
func (t *TUI) Run(ctx context.Context) error {
	status := ""

	for {
		choice, err := t.runMenu(status)
		if err != nil {
			if errors.Is(err, ErrUserQuit) {
				return nil
			}
			return err
		}
		status = ""

		switch choice.action {
		case actionQuit:
			return nil
		case actionHistory:
			if err := t.runHistory(ctx); err != nil {
				if errors.Is(err, ErrUserQuit) {
					return nil
				}
				return err
			}
			continue
		}

		assets, err := t.pickAssets(ctx, choice.action)
		if err != nil {
			if errors.Is(err, picker.ErrCancelled) {
				continue
			}
			status = "Ошибка: " + humanizeServerUnavailableError(err)
			continue
		}

		if err := t.runUpload(ctx, assets, choice.destination, choice.strict); err != nil {
			if errors.Is(err, ErrUserQuit) {
				return nil
			}
			return err
		}
	}
}

// pickAssets resolves the menu action into assets via the corresponding
// capability. Cancellation travels back unchanged.
func (t *TUI) pickAssets(ctx context.Context, action menuAction) ([]models.Asset, error) {
	switch action {
	case actionCapture:
		return t.provider.Camera.Capture(ctx, models.CameraOptions{})
	case actionPickImages:
		return t.provider.Gallery.Pick(ctx, models.LibraryOptions{})
	case actionPickDocuments:
		return t.provider.Documents.PickMultiple(ctx, models.DocumentOptions{})
	default:
		return nil, picker.ErrCancelled
	}
}

func (t *TUI) runMenu(status string) (menuChoice, error) {
	model := newMenuModel(t.defaults, t.buildInfo, status)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return menuChoice{}, err
	}

	result, ok := finalModel.(menuModel)
	if !ok {
		return menuChoice{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return menuChoice{}, ErrUserQuit
	}

	return result.choice, nil
}

func (t *TUI) runUpload(ctx context.Context, assets []models.Asset, destination string, strict bool) error {
	model := newUploadModel(ctx, t.services.MediaService, assets, destination, strict)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(uploadModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) runHistory(ctx context.Context) error {
	model := newHistoryModel(ctx, t.services.HistoryService)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(historyModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
