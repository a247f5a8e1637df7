package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmcode/skillready/pkg/model"
)

// FormField identifies the focused input of the profile form.
type FormField int

const (
	FieldRole FormField = iota
	FieldIndustry
	FieldTarget
	FieldExperience
	FieldSkills
	FieldHours
	FieldUrgency
	FieldSubmit
)

const fieldCount = int(FieldSubmit) + 1

// choiceField is a select box cycled with left/right. index -1 means nothing
// has been picked yet.
type choiceField struct {
	choices []model.Choice
	index   int
}

func newChoiceField(choices []model.Choice) choiceField {
	return choiceField{choices: choices, index: -1}
}

func (c choiceField) Value() string {
	if c.index < 0 || c.index >= len(c.choices) {
		return ""
	}
	return c.choices[c.index].Value
}

func (c choiceField) Label() string {
	if c.index < 0 || c.index >= len(c.choices) {
		return ""
	}
	return c.choices[c.index].Label
}

func (c choiceField) next() choiceField {
	if len(c.choices) == 0 {
		return c
	}
	c.index = (c.index + 1) % len(c.choices)
	return c
}

func (c choiceField) prev() choiceField {
	if len(c.choices) == 0 {
		return c
	}
	if c.index <= 0 {
		c.index = len(c.choices) - 1
	} else {
		c.index--
	}
	return c
}

// ProfileForm holds the inputs of the assessment form.
type ProfileForm struct {
	role         textinput.Model
	industry     textinput.Model
	skills       textarea.Model
	target       choiceField
	experience   choiceField
	hours        choiceField
	urgency      choiceField
	focusedField FormField
	width        int
}

func NewProfileForm() ProfileForm {
	roleTI := textinput.New()
	roleTI.Placeholder = "e.g., Frontend Developer, Data Scientist"
	roleTI.CharLimit = 200
	roleTI.Width = 60
	roleTI.Focus()

	industryTI := textinput.New()
	industryTI.Placeholder = "e.g., Tech, Finance, Healthcare (optional)"
	industryTI.CharLimit = 200
	industryTI.Width = 60
	industryTI.Blur()

	skillsTA := textarea.New()
	skillsTA.Placeholder = "List your current skills, separated by commas..."
	skillsTA.CharLimit = 2000
	skillsTA.SetWidth(60)
	skillsTA.SetHeight(3)
	skillsTA.Blur()

	return ProfileForm{
		role:         roleTI,
		industry:     industryTI,
		skills:       skillsTA,
		target:       newChoiceField(model.TargetLevelChoices),
		experience:   newChoiceField(model.ExperienceChoices),
		hours:        newChoiceField(model.HoursChoices),
		urgency:      newChoiceField(model.UrgencyChoices),
		focusedField: FieldRole,
		width:        70,
	}
}

// SetWidth resizes the text inputs to the terminal width.
func (f *ProfileForm) SetWidth(width int) {
	f.width = width
	fieldWidth := width - 10
	if fieldWidth > 100 {
		fieldWidth = 100
	}
	if fieldWidth < 30 {
		fieldWidth = 30
	}
	f.role.Width = fieldWidth
	f.industry.Width = fieldWidth
	f.skills.SetWidth(fieldWidth)
}

// Update handles form navigation and forwards input to the focused field.
func (f ProfileForm) Update(msg tea.Msg) (ProfileForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return f.focusNext(), nil
		case "shift+tab":
			return f.focusPrev(), nil
		case "enter", "down":
			// the skills box keeps enter and arrows for its own lines
			if f.focusedField != FieldSkills {
				return f.focusNext(), nil
			}
		case "up":
			if f.focusedField != FieldSkills {
				return f.focusPrev(), nil
			}
		case "left", "right":
			if choice := f.focusedChoice(); choice != nil {
				if key.String() == "right" {
					*choice = choice.next()
				} else {
					*choice = choice.prev()
				}
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusedField {
	case FieldRole:
		f.role, cmd = f.role.Update(msg)
	case FieldIndustry:
		f.industry, cmd = f.industry.Update(msg)
	case FieldSkills:
		f.skills, cmd = f.skills.Update(msg)
	}
	return f, cmd
}

func (f *ProfileForm) focusedChoice() *choiceField {
	switch f.focusedField {
	case FieldTarget:
		return &f.target
	case FieldExperience:
		return &f.experience
	case FieldHours:
		return &f.hours
	case FieldUrgency:
		return &f.urgency
	default:
		return nil
	}
}

func (f ProfileForm) focusNext() ProfileForm {
	return f.focus(FormField((int(f.focusedField) + 1) % fieldCount))
}

func (f ProfileForm) focusPrev() ProfileForm {
	return f.focus(FormField((int(f.focusedField) + fieldCount - 1) % fieldCount))
}

func (f ProfileForm) focus(field FormField) ProfileForm {
	f.role.Blur()
	f.industry.Blur()
	f.skills.Blur()

	f.focusedField = field
	switch field {
	case FieldRole:
		f.role.Focus()
	case FieldIndustry:
		f.industry.Focus()
	case FieldSkills:
		f.skills.Focus()
	}
	return f
}

// Values returns the profile currently entered.
func (f ProfileForm) Values() model.UserProfile {
	return model.UserProfile{
		Role:            strings.TrimSpace(f.role.Value()),
		Industry:        strings.TrimSpace(f.industry.Value()),
		TargetLevel:     model.TargetLevel(f.target.Value()),
		CurrentSkills:   strings.TrimSpace(f.skills.Value()),
		ExperienceLevel: model.ExperienceLevel(f.experience.Value()),
		HoursPerWeek:    f.hours.Value(),
		Urgency:         model.Urgency(f.urgency.Value()),
	}
}

// Validate reports the required fields that are still blank.
func (f ProfileForm) Validate() error {
	return f.Values().Validate()
}

// Ready reports whether the analyze button is enabled.
func (f ProfileForm) Ready() bool {
	return f.Validate() == nil
}
