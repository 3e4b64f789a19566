package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type uploadDoneMsg struct {
	result models.UploadResult
	err    error
}

type uploadModel struct {
	ctx         context.Context
	media       service.MediaService
	assets      []models.Asset
	destination string
	strict      bool

	spinner   spinner.Model
	uploading bool
	result    models.UploadResult
	errMsg    string
	status    string

	quitByUser bool
}

func newUploadModel(ctx context.Context, media service.MediaService, assets []models.Asset, destination string, strict bool) uploadModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return uploadModel{
		ctx:         ctx,
		media:       media,
		assets:      assets,
		destination: destination,
		strict:      strict,
		spinner:     s,
		uploading:   true,
	}
}

func (m uploadModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdUpload())
}

func (m uploadModel) cmdUpload() tea.Cmd {
	ctx := m.ctx
	media := m.media
	assets := m.assets
	destination := m.destination
	strict := m.strict

	return func() tea.Msg {
		result, err := media.Upload(ctx, assets, destination, strict)
		return uploadDoneMsg{result: result, err: err}
	}
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		m.uploading = false
		m.result = msg.result
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.uploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.uploading {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc":
		return m, tea.Quit
	case "c":
		payload, err := json.MarshalIndent(m.result, "", "  ")
		if err != nil {
			m.errMsg = fmt.Sprintf("Ошибка сериализации: %v", err)
			return m, nil
		}
		if err := clipboard.WriteAll(string(payload)); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}

	return m, nil
}

func (m uploadModel) View() string {
	if m.uploading {
		out := m.spinner.View() + fmt.Sprintf(" Загрузка %d файл(ов) на %s...", len(m.assets), m.destination)
		return renderPage("ЗАГРУЗКА", out, "")
	}

	out := ""

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n\n"
	}

	out += "Статус  │ " + uploadStatusLabel(m.result.Status) + "\n"
	if m.result.OK {
		out += "Итог    │ Успешно\n"
	} else {
		out += "Итог    │ Неудачно\n"
	}
	out += fmt.Sprintf("Файлов  │ %d\n", len(m.assets))

	if m.result.Error != "" {
		out += "Причина │ " + fitText(m.result.Error, 60) + "\n"
	}

	if len(m.result.FailedUploads) > 0 {
		out += "\nНе загружено:\n"
		for _, failed := range m.result.FailedUploads {
			out += fmt.Sprintf("  %s — %s\n", failed.Item.Asset.FileName, fitText(failed.Reason, 48))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage("РЕЗУЛЬТАТ ЗАГРУЗКИ", strings.TrimRight(out, "\n"), "c: копировать JSON │ enter: в меню │ q: выход")
}

func uploadStatusLabel(status models.UploadStatus) string {
	switch status {
	case models.UploadStatusAllUploaded:
		return "Все файлы загружены"
	case models.UploadStatusFailedFast:
		return "Партия остановлена на первой ошибке"
	case models.UploadStatusPartiallyFailed:
		return "Часть файлов не загружена"
	case models.UploadStatusAllFailed:
		return "Ни один файл не загружен"
	default:
		return string(status)
	}
}
