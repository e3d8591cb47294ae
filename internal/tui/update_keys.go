package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/store"
)

func batchCmd(cmds []tea.Cmd) tea.Cmd {
	var live []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			live = append(live, c)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return tea.Batch(live...)
	}
}

// handleKeyMsg offers msg to the screen's actions, then the global ones, and
// finally hands the raw key to the screen. Typing-sensitive actions are
// skipped while a text field has focus so the key reaches the field.
func (m model) handleKeyMsg(msg tea.KeyMsg) (model, tea.Cmd) {
	mPtr := &m

	if msg.Type == tea.KeyCtrlC {
		return *mPtr, mPtr.quit("interrupt")
	}

	if mPtr.showHelp {
		for _, act := range mPtr.keys.GlobalActions(msg) {
			if act == ActHelp || act == ActBack {
				mPtr.showHelp = false
				return *mPtr, nil
			}
			if act == ActQuit {
				return *mPtr, mPtr.quit("quit")
			}
		}
		return *mPtr, nil
	}

	for _, act := range mPtr.keys.ScreenActions(mPtr.screenID, msg) {
		if mPtr.IsTyping() && mPtr.keys.IsTypingSensitive(act) {
			continue
		}
		if handled, cmd := mPtr.screen.HandleAction(act); handled {
			return *mPtr, cmd
		}
	}

	for _, act := range mPtr.keys.GlobalActions(msg) {
		if mPtr.IsTyping() && mPtr.keys.IsTypingSensitive(act) {
			continue
		}
		if handled, cmd := mPtr.handleGlobalAction(act); handled {
			return *mPtr, cmd
		}
	}

	return *mPtr, mPtr.screen.Update(msg)
}

func (m *model) handleGlobalAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActInterrupt:
		return true, m.quit("interrupt")
	case ActQuit:
		return true, m.quit("quit")
	case ActHelp:
		m.showHelp = !m.showHelp
		return true, nil
	case ActBack:
		return true, goBack()
	case ActToggleTheme:
		return true, m.toggleTheme()
	case ActCopyError:
		note, failed := copyText(m.lastErr, "Erro")
		return true, m.setStatus(note, failed)
	}
	return false, nil
}

func (m *model) quit(reason string) tea.Cmd {
	m.d.logger.Info("quitting", zap.String("reason", reason), zap.String("path", m.path))
	return tea.Quit
}

// toggleTheme cycles the stored preference and restyles the screen.
func (m *model) toggleTheme() tea.Cmd {
	next := m.d.store.State().User.Preferences.Theme.Next()
	m.d.store.Dispatch(store.UpdatePreferences{Patch: store.PreferencesPatch{Theme: &next}})
	m.applyTheme()
	if m.width > 0 {
		m.screen.SetSize(m.width, m.bodyHeight())
	}
	m.d.logger.Debug("theme changed", zap.String("theme", string(next)), zap.Bool("dark", m.d.dark()))
	return m.setStatus("Tema: "+themeLabel(next), false)
}
