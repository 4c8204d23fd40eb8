package tui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"

	"github.com/CaptShanks/gasprism/internal/forge"
)

// reportMsg carries the finished report back into the spinner model
type reportMsg struct {
	text string
	err  error
}

// SpinnerModel shows a spinner while a report source runs
type SpinnerModel struct {
	ctx     context.Context
	source  forge.Source
	spinner spinner.Model
	text    string
	err     error
	done    bool
}

// NewSpinnerModel creates a model that reads source once when started
func NewSpinnerModel(ctx context.Context, source forge.Source) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return SpinnerModel{ctx: ctx, source: source, spinner: s}
}

// Init starts the spinner and the report in parallel
func (m SpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m SpinnerModel) fetch() tea.Msg {
	text, err := m.source.Report(m.ctx)
	return reportMsg{text: text, err: err}
}

// Update handles messages
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.text, m.err, m.done = msg.text, msg.err, true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line, empty once the report is in
func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + mutedStyle.Render("Running "+m.source.String()+"...")
}

// Result returns the report text or error once done
func (m SpinnerModel) Result() (string, error) {
	if !m.done {
		return "", errors.New("gas report did not finish")
	}
	return m.text, m.err
}

// spinnerSource renders a spinner on out while the wrapped source runs
type spinnerSource struct {
	source forge.Source
	out    io.Writer
}

// WithSpinner wraps source with a spinner drawn on out. When out is not a
// terminal source is returned as is.
func WithSpinner(source forge.Source, out io.Writer) forge.Source {
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return source
	}
	return &spinnerSource{source: source, out: out}
}

func (s *spinnerSource) String() string {
	return s.source.String()
}

// Report runs the wrapped source under a bubbletea program. Interrupts
// reach the caller's context instead of the program, which cancels the
// running command.
func (s *spinnerSource) Report(ctx context.Context) (string, error) {
	p := tea.NewProgram(
		NewSpinnerModel(ctx, s.source),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(err, "run spinner")
	}
	return final.(SpinnerModel).Result()
}
