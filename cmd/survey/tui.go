package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"healthsurvey/internal/form"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(30)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	bmiStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

// inputFields maps the text inputs, in display order, onto form fields.
// The employee selector sits above them at focus index 0.
var inputFields = []form.Field{
	form.FieldGender,
	form.FieldAge,
	form.FieldWaistCircumference,
	form.FieldHeightFeet,
	form.FieldHeightInches,
	form.FieldWeight,
}

var inputLabels = []string{
	"Gender",
	"Age",
	"Waist Circumference (inches)",
	"Height - Feet",
	"Height - Inches",
	"Weight (lb)",
}

type submitResultMsg struct{ err error }

// model follows Bubble Tea's Elm architecture: key events update the
// form controller, the submit call runs as a command, and its result
// message completes the controller's state machine.
type model struct {
	ctrl   *form.Controller
	api    form.API
	inputs []textinput.Model
	focus  int // 0 = employee selector, 1..len(inputs) = text inputs
	optIdx int // 0 = no employee selected, else options[optIdx-1]
	notice form.Notice
}

func newModel(ctrl *form.Controller, api form.API) *model {
	inputs := make([]textinput.Model, len(inputFields))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 24
		switch inputFields[i] {
		case form.FieldGender:
			ti.Placeholder = "Male / Female"
		default:
			ti.Placeholder = "0"
		}
		inputs[i] = ti
	}
	return &model{ctrl: ctrl, api: api, inputs: inputs}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			m.setFocus(m.focus + 1)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus(m.focus - 1)
			return m, nil

		case tea.KeyLeft, tea.KeyRight:
			if m.focus == 0 {
				if msg.Type == tea.KeyLeft {
					m.cycleEmployee(-1)
				} else {
					m.cycleEmployee(1)
				}
				return m, nil
			}

		case tea.KeyEnter:
			if m.focus == len(m.inputs) {
				return m, m.submit()
			}
			m.setFocus(m.focus + 1)
			return m, nil

		case tea.KeyCtrlS:
			return m, m.submit()
		}

	case submitResultMsg:
		m.notice = m.ctrl.FinishSubmit(msg.err)
		if m.notice.Kind == form.NoticeSubmitted {
			m.clearInputs()
		}
		return m, nil
	}

	// Route remaining key events to the focused text input and mirror
	// its value into the controller so the BMI stays current.
	if m.focus >= 1 && m.focus <= len(m.inputs) {
		var cmd tea.Cmd
		i := m.focus - 1
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.ctrl.SetField(inputFields[i], m.inputs[i].Value())
		return m, cmd
	}
	return m, nil
}

func (m *model) setFocus(focus int) {
	last := len(m.inputs)
	if focus < 0 {
		focus = last
	}
	if focus > last {
		focus = 0
	}
	m.focus = focus
	for i := range m.inputs {
		if i == focus-1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// cycleEmployee steps through the directory options, position 0 being
// "no selection".
func (m *model) cycleEmployee(delta int) {
	opts := m.ctrl.Options()
	if len(opts) == 0 {
		return
	}
	m.optIdx += delta
	if m.optIdx < 0 {
		m.optIdx = len(opts)
	}
	if m.optIdx > len(opts) {
		m.optIdx = 0
	}
	if m.optIdx == 0 {
		m.ctrl.SelectEmployee("")
	} else {
		m.ctrl.SelectEmployee(opts[m.optIdx-1].Number)
	}
}

func (m *model) submit() tea.Cmd {
	payload, notice, ok := m.ctrl.BeginSubmit()
	if !ok {
		m.notice = notice
		return nil
	}
	m.notice = form.Notice{}
	api := m.api
	return func() tea.Msg {
		return submitResultMsg{err: api.SubmitSurvey(context.Background(), payload)}
	}
}

func (m *model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.optIdx = 0
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Employee Health Survey"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Employee"))
	b.WriteString(m.employeeLine())
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(labelStyle.Render(inputLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("BMI"))
	if bmi := m.ctrl.State().BMI; bmi != nil {
		b.WriteString(bmiStyle.Render(fmt.Sprintf("%.1f (%s)", bmi.Value, bmi.Category)))
	} else {
		b.WriteString(dimStyle.Render("—"))
	}
	b.WriteString("\n\n")

	if m.ctrl.Submitting() {
		b.WriteString(dimStyle.Render("Submitting..."))
		b.WriteString("\n")
	} else if m.notice.Kind != form.NoticeNone {
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab/↓ next · ←/→ pick employee · ctrl+s submit · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) employeeLine() string {
	opts := m.ctrl.Options()
	if len(opts) == 0 {
		return dimStyle.Render("(no employees loaded)")
	}
	label := "(none)"
	if m.optIdx > 0 {
		label = opts[m.optIdx-1].Label
	}
	if m.focus == 0 {
		return fmt.Sprintf("< %s >", label)
	}
	return label
}

func (m *model) renderNotice() string {
	switch m.notice.Kind {
	case form.NoticeSubmitted:
		return successStyle.Render(m.notice.Message)
	default:
		return errorStyle.Render(m.notice.Message)
	}
}
