package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.screen.SetSize(m.width, m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(typed)

	case navigateMsg:
		return m.handleNavigate(typed)

	case backMsg:
		return m.handleBack()

	case statusMsg:
		return m, m.setStatus(typed.note, typed.isErr)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == typed.id {
			m.toast = nil
		}
		return m, nil

	case authResultMsg:
		m.d.applyAuthResult(typed)
		var cmds []tea.Cmd
		if typed.err != nil {
			cmds = append(cmds, m.setStatus(authapi.Message(typed.err), true))
		} else if typed.offline {
			cmds = append(cmds, m.setStatus("Modo offline: sessão local", false))
		}
		cmds = append(cmds, m.screen.Update(typed))
		return m, batchCmd(cmds)

	case profileSavedMsg:
		var cmds []tea.Cmd
		if typed.err != nil {
			m.d.logger.Warn("profile update failed", zap.Error(typed.err))
			cmds = append(cmds, m.setStatus(authapi.Message(typed.err), true))
		} else {
			note := typed.message
			if note == "" {
				note = "Perfil atualizado"
			}
			cmds = append(cmds, m.setStatus(note, false))
		}
		cmds = append(cmds, m.screen.Update(typed))
		return m, batchCmd(cmds)
	}

	return m, m.screen.Update(msg)
}

func (m model) handleNavigate(msg navigateMsg) (model, tea.Cmd) {
	target := normalizePath(msg.path)
	if !msg.replace && m.path != "" {
		m.history = append(m.history, m.path)
	}
	m.showHelp = false
	m.mount(target)
	return m, m.screen.Init()
}

// handleBack pops the history. The landing page is the bottom of the stack.
func (m model) handleBack() (model, tea.Cmd) {
	if len(m.history) == 0 {
		if m.path == pathLanding {
			return m, nil
		}
		m.mount(pathLanding)
		return m, m.screen.Init()
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.showHelp = false
	m.mount(prev)
	return m, m.screen.Init()
}
