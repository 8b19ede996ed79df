package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recall-srs/recall/internal/domain"
	"github.com/recall-srs/recall/internal/service/review"
)

const headerText = "RECALL"

// keyMap holds the review screen bindings.
type keyMap struct {
	Again key.Binding
	Hard  key.Binding
	Good  key.Binding
	Easy  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Again: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "again"),
		),
		Hard: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "hard"),
		),
		Good: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "good"),
		),
		Easy: key.NewBinding(
			key.WithKeys("4", " "),
			key.WithHelp("4/space", "easy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type phase int

const (
	phaseFront phase = iota
	phaseBack
)

// model is the per-card review program: front side first, any key reveals
// the back, then a grade key ends it.
type model struct {
	card  domain.Card
	keys  keyMap
	help  help.Model
	phase phase
	width int

	grade   domain.Grade
	graded  bool
	aborted bool
}

func newModel(card domain.Card) model {
	return model{
		card: card,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.aborted = true
			return m, tea.Quit
		}
		if m.phase == phaseFront {
			m.phase = phaseBack
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Again):
			m.grade, m.graded = domain.GradeAgain, true
		case key.Matches(msg, m.keys.Hard):
			m.grade, m.graded = domain.GradeHard, true
		case key.Matches(msg, m.keys.Good):
			m.grade, m.graded = domain.GradeGood, true
		case key.Matches(msg, m.keys.Easy):
			m.grade, m.graded = domain.GradeEasy, true
		default:
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	header := headerStyle.Render(headerText)
	if m.width > lipgloss.Width(header) {
		header = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	title := strings.TrimSpace(m.card.Title)
	if m.phase == phaseFront {
		title = HideCloze(title)
	}
	b.WriteString(tagStyle.Render("REVIEW: "))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.phase == phaseFront {
		b.WriteString(dimStyle.Render("press any key to show the back side"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(bodyStyle.Render(strings.TrimSpace(m.card.Body)))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.Again, m.keys.Hard, m.keys.Good, m.keys.Easy, m.keys.Quit,
	}))
	b.WriteString("\n")
	return b.String()
}

// Presenter drives one bubbletea program per presented card, satisfying the
// orchestrator's Presenter interface.
type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present blocks until the user grades the card or aborts the session.
func (p *Presenter) Present(ctx context.Context, card domain.Card) (domain.Grade, error) {
	prog := tea.NewProgram(newModel(card), tea.WithAltScreen(), tea.WithContext(ctx))
	out, err := prog.Run()
	if err != nil {
		return 0, fmt.Errorf("run review screen: %w", err)
	}
	final, ok := out.(model)
	if !ok || final.aborted || !final.graded {
		return 0, review.ErrAborted
	}
	return final.grade, nil
}
