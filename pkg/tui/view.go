package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmcode/skillready/pkg/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	disabledColor = lipgloss.Color("240")
	enabledColor  = lipgloss.Color("69")
)

func (m Model) View() string {
	switch m.phase {
	case PhaseAnalyzing:
		return m.analyzingView()
	case PhaseResult:
		return m.resultView()
	default:
		return m.formView()
	}
}

func (m Model) formView() string {
	f := m.form
	lines := []string{
		titleStyle.Render("🎯 Skill Readiness Assessment"),
		mutedStyle.Render("Tell us where you are and where you want to go."),
		"",
	}

	lines = append(lines,
		fieldLabel(f, FieldRole, "Target Job Role *"), f.role.View(), "",
		fieldLabel(f, FieldIndustry, "Industry"), f.industry.View(), "",
		fieldLabel(f, FieldTarget, "Target Level *"), choiceView(f, FieldTarget, f.target), "",
		fieldLabel(f, FieldExperience, "Experience Level *"), choiceView(f, FieldExperience, f.experience), "",
		fieldLabel(f, FieldSkills, "Current Skills *"), f.skills.View(), "",
		fieldLabel(f, FieldHours, "Hours per Week *"), choiceView(f, FieldHours, f.hours), "",
		fieldLabel(f, FieldUrgency, "Urgency *"), choiceView(f, FieldUrgency, f.urgency), "",
	)

	lines = append(lines, submitButton(f))
	if m.formErr != nil {
		lines = append(lines, errorStyle.Render("✗ "+m.formErr.Error()))
	}
	lines = append(lines, "", mutedStyle.Render("[tab] next  [shift+tab] previous  [←/→] choose  [ctrl+s] analyze  [esc] quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func fieldLabel(f ProfileForm, field FormField, text string) string {
	if f.focusedField == field {
		return focusedStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func choiceView(f ProfileForm, field FormField, c choiceField) string {
	value := c.Label()
	if value == "" {
		value = mutedStyle.Render("select...")
	}
	if f.focusedField == field {
		return fmt.Sprintf("  ‹ %s ›", value)
	}
	return "    " + value
}

func submitButton(f ProfileForm) string {
	style := buttonStyle.BorderForeground(disabledColor).Foreground(disabledColor)
	if f.Ready() {
		style = buttonStyle.BorderForeground(enabledColor).Foreground(enabledColor)
	}
	label := "Analyze My Readiness"
	if f.focusedField == FieldSubmit {
		label = "▸ " + label
		style = style.Bold(true)
	}
	return style.Render(label)
}

func (m Model) analyzingView() string {
	lines := []string{
		titleStyle.Render("🎯 Skill Readiness Assessment"),
		"",
		fmt.Sprintf("%s Analyzing your readiness for %s...", m.spinner.View(), m.profile.Role),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.windowHeight > 0 {
		topPadding := (m.windowHeight - lipgloss.Height(content)) / 2
		if topPadding > 0 {
			return lipgloss.NewStyle().PaddingTop(topPadding).PaddingLeft(2).Render(content)
		}
	}
	return content
}

func (m Model) resultView() string {
	height := m.resultHeight()
	end := min(m.scroll+height, len(m.resultLines))
	start := min(m.scroll, end)
	visible := m.resultLines[start:end]

	var b strings.Builder
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(resultHelp(m.result, m.scroll, m.maxScroll())))
	return b.String()
}

func resultHelp(result *model.AnalysisResult, scroll, maxScroll int) string {
	label := ""
	if result != nil {
		label = fmt.Sprintf("%d%% %s · ", result.ReadinessScore, model.ScoreLabel(result.ReadinessScore))
	}
	position := ""
	if maxScroll > 0 {
		position = fmt.Sprintf(" · %d/%d", scroll, maxScroll)
	}
	return label + "[↑/↓] scroll  [e] edit  [n] new assessment  [q] quit" + position
}
