// Package tui runs an interactive terminal quiz: one question at a
// time, arrow-key option selection for multiple choice and a text
// input for fill-in-the-blank, followed by a score summary.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/studybuddy-ai/studybuddy/internal/quiz"
	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
)

var optionLabels = []string{"A", "B", "C", "D"}

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseSummary
)

// Model walks the quiz question by question.
type Model struct {
	quiz     *quiz.Quiz
	index    int
	selected int
	input    textinput.Model
	phase    phase
	aborted  bool

	results []quiz.Result
	summary quiz.Summary
}

// NewModel creates the quiz model. The quiz must have at least one
// question.
func NewModel(q *quiz.Quiz) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 80
	ti.Focus()

	return Model{quiz: q, input: ti}
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.aborted
}

// Results returns the graded questions once the quiz is complete.
func (m Model) Results() ([]quiz.Result, quiz.Summary) {
	return m.results, m.summary
}

func (m Model) Init() tea.Cmd {
	if m.current().Type == quizgen.TypeFillBlank {
		return m.input.Focus()
	}
	return nil
}

func (m Model) current() quiz.Question {
	return m.quiz.Questions[m.index]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "esc":
		if m.phase != phaseSummary {
			m.aborted = true
		}
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		return m.updateQuestion(kmsg)
	case phaseFeedback:
		return m.advance()
	case phaseSummary:
		if kmsg.String() == "enter" || kmsg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateQuestion(kmsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.current().Type == quizgen.TypeMCQ {
		options := m.current().MCQ.Options
		switch kmsg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(options)-1 {
				m.selected++
			}
		case "enter":
			m.quiz.Answer(m.index, options[m.selected])
			m.phase = phaseFeedback
		}
		return m, nil
	}

	if kmsg.String() == "enter" {
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.quiz.Answer(m.index, m.input.Value())
		m.phase = phaseFeedback
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(kmsg)
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.index+1 >= len(m.quiz.Questions) {
		m.results, m.summary = m.quiz.Evaluate()
		m.phase = phaseSummary
		return m, nil
	}

	m.index++
	m.selected = 0
	m.phase = phaseQuestion
	if m.current().Type == quizgen.TypeFillBlank {
		m.input.Reset()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Quiz: %s", m.quiz.Topic)) + "\n\n")

	switch m.phase {
	case phaseQuestion:
		m.renderQuestion(&b)
	case phaseFeedback:
		m.renderFeedback(&b)
	case phaseSummary:
		m.renderSummary(&b)
	}
	return b.String()
}

func (m Model) renderQuestion(b *strings.Builder) {
	q := m.current()
	fmt.Fprintf(b, "%s\n\n", dimStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.quiz.Questions))))
	b.WriteString(questionStyle.Render(q.Text()) + "\n\n")

	if q.Type == quizgen.TypeMCQ {
		for i, opt := range q.MCQ.Options {
			line := fmt.Sprintf("  %s)  %s", optionLabels[i], opt)
			if i == m.selected {
				line = fmt.Sprintf("▸ %s)  %s", optionLabels[i], opt)
				b.WriteString(selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString(optionStyle.Render(line) + "\n")
			}
		}
		b.WriteString("\n" + hintStyle.Render("↑↓ select · enter submit · esc quit"))
		return
	}

	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(hintStyle.Render("enter submit · esc quit"))
}

func (m Model) renderFeedback(b *strings.Builder) {
	q := m.current()
	results, _ := m.quiz.Evaluate()
	r := results[m.index]

	b.WriteString(questionStyle.Render(q.Text()) + "\n\n")
	if r.Correct {
		b.WriteString(correctStyle.Render("✓ Correct!") + "\n")
	} else {
		b.WriteString(wrongStyle.Render("✗ Not quite.") + "\n")
		fmt.Fprintf(b, "%s\n", dimStyle.Render("Answer: "+r.CorrectAnswer))
	}
	b.WriteString("\n" + hintStyle.Render("any key to continue"))
}

func (m Model) renderSummary(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Results") + "\n\n")

	for _, r := range m.results {
		mark := correctStyle.Render("✓")
		if !r.Correct {
			mark = wrongStyle.Render("✗")
		}
		fmt.Fprintf(b, "%s %d. %s\n", mark, r.Position, r.Question.Text())
		if !r.Correct {
			fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("you: %s · answer: %s", r.UserAnswer, r.CorrectAnswer)))
		}
	}

	fmt.Fprintf(b, "\n%s\n", questionStyle.Render(
		fmt.Sprintf("Score: %d/%d (%.0f%%)", m.summary.Correct, m.summary.Total, m.summary.Percent())))
	b.WriteString("\n" + hintStyle.Render("enter to finish"))
}

// Run plays the quiz in the terminal and returns the graded results.
// A nil result slice with no error means the user aborted.
func Run(q *quiz.Quiz) ([]quiz.Result, quiz.Summary, error) {
	p := tea.NewProgram(NewModel(q))
	final, err := p.Run()
	if err != nil {
		return nil, quiz.Summary{}, fmt.Errorf("run quiz ui: %w", err)
	}

	model, ok := final.(Model)
	if !ok || model.Aborted() {
		return nil, quiz.Summary{}, nil
	}
	results, summary := model.Results()
	return results, summary, nil
}
