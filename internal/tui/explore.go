// internal/tui/explore.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/wordvec/internal/embed"
	"github.com/mwiater/wordvec/internal/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	distanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// resultsMsg carries a finished query back into the update loop.
type resultsMsg struct {
	header  string
	results []embed.Result
	err     error
}

// Model is the Bubble Tea model for the explore screen.
type Model struct {
	searcher *embed.Searcher
	topN     int
	metric   string

	input   textinput.Model
	spinner spinner.Model

	busy    bool
	header  string
	results []embed.Result
	err     error
	width   int
}

// NewExplorer builds the explore screen over a ready searcher.
func NewExplorer(searcher *embed.Searcher, topN int, metric string) *Model {
	input := textinput.New()
	input.Placeholder = `word, or "a : b :: c"`
	input.Focus()
	input.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		searcher: searcher,
		topN:     topN,
		metric:   metric,
		input:    input,
		spinner:  sp,
		width:    80,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.busy || strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.busy = true
			m.err = nil
			return m, tea.Batch(m.queryCmd(m.input.Value()), m.spinner.Tick)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case resultsMsg:
		m.busy = false
		m.header = msg.header
		m.results = msg.results
		m.err = msg.err
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// queryCmd runs the full-vocabulary scan off the update loop.
func (m *Model) queryCmd(raw string) tea.Cmd {
	searcher, topN := m.searcher, m.topN
	return func() tea.Msg {
		kind, words, err := parseQuery(raw)
		if err != nil {
			return resultsMsg{err: err}
		}
		switch kind {
		case queryAnalogy:
			results, err := searcher.Analogy(words[0], words[1], words[2], topN, true)
			header := fmt.Sprintf("%s is to %s as %s is to:", words[0], words[1], words[2])
			return resultsMsg{header: header, results: results, err: err}
		default:
			results, err := searcher.Neighbors(words[0], topN)
			return resultsMsg{header: fmt.Sprintf("nearest to %s:", words[0]), results: results, err: err}
		}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("wordvec explore — %d words, %dd, %s", m.searcher.Table().Len(), m.searcher.Table().Dim(), m.metric)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View())
		b.WriteString(" scanning vocabulary ...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case len(m.results) > 0:
		if m.header != "" {
			b.WriteString(m.header)
			b.WriteString("\n")
		}
		for _, r := range m.results {
			line := fmt.Sprintf("%s %s",
				distanceStyle.Render(fmt.Sprintf("(%.4f)", r.Distance)),
				wordStyle.Render(r.Word))
			b.WriteString(util.TruncateToWidth(line, util.Max(m.width, 20)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: query • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
