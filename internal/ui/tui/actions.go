package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func handleKeyActions(msg tea.KeyMsg, m model) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.toggleFocus()
	case "ctrl+r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, analyzeCmd(m, m.code.Value())
	case "enter":
		if m.focus != focusQuestion {
			break
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, askCmd(m, m.code.Value(), m.question.Value())
	}

	return m.updateFocused(msg)
}

func (m model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusCode {
		m.focus = focusQuestion
		m.code.Blur()
		return m, m.question.Focus()
	}
	m.focus = focusCode
	m.question.Blur()
	return m, m.code.Focus()
}

func analyzeCmd(m model, source string) tea.Cmd {
	return func() tea.Msg {
		return analysisMsg{report: m.analyzer.Analyze(m.ctx, source)}
	}
}

func askCmd(m model, source, question string) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{report: m.analyzer.Ask(m.ctx, source, question)}
	}
}
