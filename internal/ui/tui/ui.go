// Package tui is the terminal front end: a code editor, a question field and
// the rendered reports.
package tui

import (
	"context"
	"fmt"
	"strings"

	"jsanalyzer/internal/core/app"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

// Analyzer is the pair of request handlers the terminal UI drives.
type Analyzer interface {
	Analyze(ctx context.Context, source string) app.AnalysisReport
	Ask(ctx context.Context, source, question string) app.QuestionReport
}

type focusField int

const (
	focusCode focusField = iota
	focusQuestion
)

type analysisMsg struct {
	report app.AnalysisReport
}

type answerMsg struct {
	report app.QuestionReport
}

type model struct {
	ctx      context.Context
	analyzer Analyzer

	code     textarea.Model
	question textinput.Model
	focus    focusField

	analysis *app.AnalysisReport
	answer   *app.QuestionReport
	busy     bool
}

func initialModel(ctx context.Context, analyzer Analyzer, source string) model {
	code := textarea.New()
	code.Placeholder = "Paste your JavaScript code here..."
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.SetWidth(80)
	code.SetHeight(12)
	code.SetValue(source)
	code.Focus()

	question := textinput.New()
	question.Placeholder = "Ask about functions or variables"
	question.Prompt = "? "
	question.Width = 76

	return model{
		ctx:      ctx,
		analyzer: analyzer,
		code:     code,
		question: question,
		focus:    focusCode,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyActions(msg, m)
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		width := msg.Width - h
		if width < 20 {
			width = 20
		}
		m.code.SetWidth(width)
		m.question.Width = width - 4
		return m, nil
	case analysisMsg:
		m.busy = false
		report := msg.report
		m.analysis = &report
		return m, nil
	case answerMsg:
		m.busy = false
		report := msg.report
		m.answer = &report
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusCode {
		m.code, cmd = m.code.Update(msg)
	} else {
		m.question, cmd = m.question.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle("JavaScript Code Analyzer"))
	b.WriteString("\n")
	b.WriteString(renderHelp(m))
	b.WriteString("\n\n")
	b.WriteString(m.code.View())
	b.WriteString("\n\n")
	b.WriteString(m.question.View())

	if m.busy {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("Working..."))
	}
	if m.analysis != nil {
		b.WriteString("\n\n")
		b.WriteString(renderAnalysis(*m.analysis))
	}
	if m.answer != nil {
		b.WriteString("\n\n")
		b.WriteString(renderAnswer(*m.answer))
	}

	return docStyle.Render(b.String())
}

func renderHelp(m model) string {
	field := "code"
	if m.focus == focusQuestion {
		field = "question"
	}
	return statusStyle.Render(fmt.Sprintf("editing %s | ctrl+r analyze | enter ask | tab switch | esc quit", field))
}

func renderAnalysis(r app.AnalysisReport) string {
	var b strings.Builder
	if r.Status == app.StatusOK {
		b.WriteString(successStyle.Render(r.Message))
	} else {
		b.WriteString(errorStyle.Render(r.Message))
	}
	if r.Summary != "" {
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render(r.Summary))
	}
	if items := r.Diagnostics(); len(items) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%d lint findings", len(items))))
		for _, d := range items {
			b.WriteString("\n  ")
			b.WriteString(d.String())
		}
	}
	return b.String()
}

func renderAnswer(r app.QuestionReport) string {
	switch {
	case r.Status != app.StatusOK:
		return errorStyle.Render(r.Message)
	case r.Answer.Kind == app.AnswerUnrecognized:
		return warningStyle.Render(r.Message)
	default:
		return infoStyle.Render(r.Message)
	}
}
