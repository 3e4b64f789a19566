package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/models"
	tea "github.com/charmbracelet/bubbletea"
)

const historyPageSize = 50

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyModel struct {
	ctx     context.Context
	history service.HistoryService

	entries []models.HistoryEntry
	idx     int
	loading bool
	errMsg  string

	quitByUser bool
}

func newHistoryModel(ctx context.Context, history service.HistoryService) historyModel {
	return historyModel{
		ctx:     ctx,
		history: history,
		loading: true,
	}
}

func (m historyModel) Init() tea.Cmd {
	return m.cmdLoadHistory()
}

func (m historyModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.history

	return func() tea.Msg {
		entries, err := svc.Recent(ctx, historyPageSize)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(historyLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.errMsg = loaded.err.Error()
			return m, nil
		}
		m.entries = loaded.entries
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitByUser = true
		return m, tea.Quit
	case "esc", "enter":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	}

	return m, nil
}

func (m historyModel) View() string {
	if m.loading {
		return renderPage("ИСТОРИЯ ЗАГРУЗОК", "Загрузка истории...", "esc: назад")
	}

	out := ""

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}

	if len(m.entries) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Загрузок ещё не было\n"
	} else {
		out += "     │ Файл                     │ Итог │ Куда                       │ Когда\n"
		out += "─────┼──────────────────────────┼──────┼────────────────────────────┼──────────────────\n"
		for i, entry := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			mark := "ок"
			if !entry.OK {
				mark = "х"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-4s │ %-26s │ %s\n",
				cursor,
				i+1,
				fitText(entry.FileName, 24),
				mark,
				fitText(entry.Destination, 26),
				entry.UploadedAt.Format("02.01.2006 15:04"),
			)
		}

		if selected, ok := m.current(); ok && selected.Reason != "" {
			out += "\nПричина: " + fitText(selected.Reason, 70) + "\n"
		}
	}

	return renderPage("ИСТОРИЯ ЗАГРУЗОК", strings.TrimRight(out, "\n"), "↑/↓: навигация │ esc: в меню │ q: выход")
}

func (m historyModel) current() (models.HistoryEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.HistoryEntry{}, false
	}
	return m.entries[m.idx], true
}
