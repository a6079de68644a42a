package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	SummarizeFileWith(path string, fraction float64) (string, error)
}

// Model is the Bubble Tea model for the interactive summary viewer.
type Model struct {
	service  SummaryPort
	path     string
	fraction float64
	step     float64
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	ready    bool
}

// New creates a viewer for path showing an already computed summary.
func New(service SummaryPort, path string, fraction, step float64, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "fraction> "
	ti.Placeholder = "e.g. 0.5, Enter to apply"
	ti.Focus()
	ti.CharLimit = 8
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		path:     path,
		fraction: fraction,
		step:     step,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   statusLine(fraction),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Fraction returns the fraction currently applied.
func (m Model) Fraction() float64 { return m.fraction }

// Summary returns the summary currently shown.
func (m Model) Summary() string { return m.summary }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, sh := summaryBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header, status, input box, its line
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-sh)
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "+", "=":
			return m.apply(m.fraction + m.step), nil
		case "-":
			return m.apply(m.fraction - m.step), nil
		case "enter":
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				return m, nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				m.status = fmt.Sprintf("Not a number: %q", v)
				return m, nil
			}
			m.input.SetValue("")
			return m.apply(f), nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply re-summarizes the file with f clamped to [0, 1].
func (m Model) apply(f float64) Model {
	f = math.Round(math.Min(1, math.Max(0, f))*1000) / 1000
	summary, err := m.service.SummarizeFileWith(m.path, f)
	if err != nil {
		m.status = "Error: " + err.Error()
		return m
	}
	m.fraction = f
	m.summary = summary
	m.status = statusLine(f)
	m.viewport.SetContent(m.renderSummary())
	m.viewport.GotoTop()
	return m
}

// View renders the header, summary box, fraction input and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Summary of " + filepath.Base(m.path))
	body := summaryBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderSummary() string {
	if m.viewport.Width <= 0 {
		return m.summary
	}
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(m.summary)
}

func statusLine(f float64) string {
	return fmt.Sprintf("fraction %.2f · +/- adjust · type a value and Enter · ↑/↓ scroll · q quit", f)
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	summaryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
