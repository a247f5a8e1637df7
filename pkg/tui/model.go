package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/formatter"
	"github.com/helmcode/skillready/pkg/model"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnalyzing
	PhaseResult
)

type analysisDoneMsg struct {
	result *model.AnalysisResult
}

// Model is the bubbletea model for the interactive assessment.
type Model struct {
	analyzer     *analyzer.Analyzer
	delay        time.Duration
	form         ProfileForm
	spinner      spinner.Model
	phase        Phase
	profile      model.UserProfile
	result       *model.AnalysisResult
	resultLines  []string
	scroll       int
	formErr      error
	windowWidth  int
	windowHeight int
}

func NewModel(a *analyzer.Analyzer, delay time.Duration) Model {
	if a == nil {
		a = analyzer.New(nil)
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		analyzer:     a,
		delay:        delay,
		form:         NewProfileForm(),
		spinner:      s,
		phase:        PhaseIdle,
		windowWidth:  80,
		windowHeight: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.form.SetWidth(msg.Width)
		return m, nil

	case analysisDoneMsg:
		if m.phase != PhaseAnalyzing {
			return m, nil
		}
		m.phase = PhaseResult
		m.result = msg.result
		m.resultLines = renderResult(m.profile, msg.result)
		m.scroll = 0
		return m, nil

	case spinner.TickMsg:
		if m.phase != PhaseAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case PhaseIdle:
			return m.updateForm(msg)
		case PhaseResult:
			return m.updateResult(msg)
		}
		return m, nil
	}

	if m.phase == PhaseIdle {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.form.focusedField == FieldSubmit {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if m.formErr != nil && m.form.Ready() {
		m.formErr = nil
	}
	return m, cmd
}

// submit starts the analysis once every required field is filled.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if err := m.form.Validate(); err != nil {
		m.formErr = err
		return m, nil
	}
	m.formErr = nil
	m.profile = m.form.Values()
	m.phase = PhaseAnalyzing
	return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.analyzer, m.profile, m.delay))
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "e":
		m.phase = PhaseIdle
		return m, nil
	case "n":
		m.form = NewProfileForm()
		m.form.SetWidth(m.windowWidth)
		m.phase = PhaseIdle
		m.result = nil
		m.resultLines = nil
		return m, nil
	case "down", "j":
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "pgdown", " ":
		m.scroll = min(m.scroll+m.resultHeight(), m.maxScroll())
	case "pgup":
		m.scroll = max(m.scroll-m.resultHeight(), 0)
	case "home", "g":
		m.scroll = 0
	case "end", "G":
		m.scroll = m.maxScroll()
	}
	return m, nil
}

func (m Model) resultHeight() int {
	h := m.windowHeight - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) maxScroll() int {
	return max(len(m.resultLines)-m.resultHeight(), 0)
}

// analyzeCmd runs the assessment after the configured pause.
func analyzeCmd(a *analyzer.Analyzer, profile model.UserProfile, delay time.Duration) tea.Cmd {
	run := func() tea.Msg {
		return analysisDoneMsg{result: a.Analyze(profile)}
	}
	if delay <= 0 {
		return run
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return run()
	})
}

func renderResult(profile model.UserProfile, result *model.AnalysisResult) []string {
	var b strings.Builder
	if err := formatter.DisplayResults(&b, profile, result, "human"); err != nil {
		return []string{err.Error()}
	}
	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}
