package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StepSpinner shows progress while the test suite runs. Interactive
// mode animates a spinner; headless mode prints one log line per step.
type StepSpinner interface {
	Step(title string)
	Stop()
}

// NewStepSpinner returns a spinner appropriate for the terminal.
func NewStepSpinner(term *Terminal, w io.Writer) StepSpinner {
	if !term.Interactive() {
		return &headlessSpinner{writer: w}
	}
	return newInteractiveSpinner(w)
}

// --- headless ---

type headlessSpinner struct {
	writer io.Writer
}

func (s *headlessSpinner) Step(title string) {
	_, _ = fmt.Fprintf(s.writer, "... %s\n", title)
}

func (s *headlessSpinner) Stop() {}

// --- interactive ---

type stepMsg string

type stopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel() spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	return spinnerModel{spinner: s}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.title = string(msg)
		return m, nil
	case stopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

type interactiveSpinner struct {
	program *tea.Program
	done    chan struct{}
}

func newInteractiveSpinner(w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(), tea.WithOutput(w))
	s := &interactiveSpinner{program: p, done: make(chan struct{})}
	go func() {
		_, _ = p.Run()
		close(s.done)
	}()
	return s
}

func (s *interactiveSpinner) Step(title string) {
	s.program.Send(stepMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.program.Send(stopMsg{})
	<-s.done
}
