package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuAction int

const (
	actionNone menuAction = iota
	actionCapture
	actionPickImages
	actionPickDocuments
	actionHistory
	actionQuit
)

type menuStage int

const (
	menuStageList menuStage = iota
	menuStageDestination
	menuStagePolicy
)

// menuChoice is what the menu program resolves with: the chosen action and,
// for upload actions, the destination URL and completion policy.
type menuChoice struct {
	action      menuAction
	destination string
	strict      bool
}

type menuModel struct {
	items  []string
	idx    int
	stage  menuStage
	status string

	destInput textinput.Model
	policyIdx int

	buildInfo     models.BuildInfo
	showBuildInfo bool

	choice     menuChoice
	quitByUser bool
}

func newMenuModel(defaults config.ClientUploader, buildInfo models.BuildInfo, status string) menuModel {
	destInput := textinput.New()
	destInput.SetValue(defaults.Destination)
	destInput.CharLimit = 0

	policyIdx := 0
	if defaults.BestEffort {
		policyIdx = 1
	}

	return menuModel{
		items: []string{
			"Снять с камеры",
			"Выбрать изображения",
			"Выбрать документы",
			"История загрузок",
			"Выход",
		},
		status:    status,
		destInput: destInput,
		policyIdx: policyIdx,
		buildInfo: buildInfo,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.quitByUser = true
		return m, tea.Quit
	case "v":
		if m.stage == menuStageList {
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		}
	}

	if m.showBuildInfo {
		if keyMsg.String() == "esc" {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.stage {
	case menuStageList:
		return m.updateList(keyMsg)
	case menuStageDestination:
		return m.updateDestination(msg, keyMsg)
	case menuStagePolicy:
		return m.updatePolicy(keyMsg)
	}

	return m, nil
}

func (m menuModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			m.choice.action = actionCapture
		case 1:
			m.choice.action = actionPickImages
		case 2:
			m.choice.action = actionPickDocuments
		case 3:
			m.choice.action = actionHistory
			return m, tea.Quit
		case 4:
			m.choice.action = actionQuit
			return m, tea.Quit
		}

		m.stage = menuStageDestination
		m.status = ""
		return m, m.destInput.Focus()
	}

	return m, nil
}

func (m menuModel) updateDestination(msg tea.Msg, keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = menuStageList
		m.choice = menuChoice{}
		m.destInput.Blur()
		return m, nil
	case "enter":
		destination := strings.TrimSpace(m.destInput.Value())
		if destination == "" {
			m.status = "Укажите адрес загрузки"
			return m, nil
		}
		m.choice.destination = destination
		m.stage = menuStagePolicy
		m.destInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.destInput, cmd = m.destInput.Update(msg)
	return m, cmd
}

func (m menuModel) updatePolicy(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = menuStageDestination
		return m, m.destInput.Focus()
	case "up", "k":
		m.policyIdx = 0
	case "down", "j":
		m.policyIdx = 1
	case "enter":
		m.choice.strict = m.policyIdx == 0
		return m, tea.Quit
	}

	return m, nil
}

func (m menuModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.stage {
	case menuStageDestination:
		out := "Куда загружать файлы?\n\n"
		out += "Адрес: " + m.destInput.View() + "\n"
		if m.status != "" {
			out += "\nОшибка: " + m.status + "\n"
		}
		return renderPage("АДРЕС ЗАГРУЗКИ", strings.TrimRight(out, "\n"), "enter: далее │ esc: назад")
	case menuStagePolicy:
		options := []string{
			"Строгая — остановить партию при первой ошибке",
			"Мягкая — загрузить всё, что получится",
		}

		out := "Политика завершения партии:\n\n"
		for i, option := range options {
			cursor := " "
			if i == m.policyIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %s\n", cursor, option)
		}
		return renderPage("ПОЛИТИКА ЗАГРУЗКИ", strings.TrimRight(out, "\n"), "enter: загрузить │ ↑/↓: навигация │ esc: назад")
	}

	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход")
}
