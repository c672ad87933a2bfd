package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deresnet/internal/submit"
)

// submitDoneMsg arrives after the simulated submission resolves.
type submitDoneMsg struct{}

// Static field positions; author and tag entries follow dynamically.
const (
	fieldTitle = iota
	fieldAbstract
	fieldInstitution
	fieldCategory
	fieldDOI
	fieldFile
	fieldFixedCount // first dynamic index
)

// SubmitPageModel is the paper submission form. Submission is simulated:
// after the delay the form resets and the library fixture is untouched.
type SubmitPageModel struct {
	styles  Styles
	spinner spinner.Model

	form   submit.Form
	inputs []textinput.Model // static fields, then authors, then tags
	focus  int
	catIdx int

	isSubmitting bool
	status       string
	fileErr      string
	delay        DelayFunc

	width  int
	height int
}

// NewSubmitPageModel creates an empty submission form.
func NewSubmitPageModel(styles Styles) SubmitPageModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := SubmitPageModel{
		styles:  styles,
		spinner: sp,
		form:    submit.NewForm(),
		delay:   Defer,
	}
	m.rebuildInputs()
	m.setFocus(fieldTitle)
	return m
}

// SetStyles swaps the color scheme.
func (m *SubmitPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.spinner.Style = styles.Spinner
}

// SetDelay replaces the async scheduler; tests inject Immediately.
func (m *SubmitPageModel) SetDelay(d DelayFunc) { m.delay = d }

// Form exposes the current draft.
func (m SubmitPageModel) Form() submit.Form { return m.form }

// SetSize records the available area.
func (m *SubmitPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	for i := range m.inputs {
		m.inputs[i].Width = w - 24
	}
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	return ti
}

// rebuildInputs recreates the input widgets from the form, preserving
// values. Called after add/remove on the dynamic lists.
func (m *SubmitPageModel) rebuildInputs() {
	inputs := make([]textinput.Model, 0, fieldFixedCount+len(m.form.Authors)+len(m.form.Tags))

	statics := []struct {
		placeholder string
		value       string
	}{
		{"Paper title", m.form.Title},
		{"Abstract", m.form.Abstract},
		{"Institution", m.form.Institution},
		{"", ""}, // category: cycled, not typed
		{"DOI (optional)", m.form.DOI},
		{"paper.pdf (PDF, LaTeX, Markdown, Word)", m.form.FileName},
	}
	for _, f := range statics {
		ti := newField(f.placeholder)
		ti.SetValue(f.value)
		inputs = append(inputs, ti)
	}
	for _, a := range m.form.Authors {
		ti := newField("Author name")
		ti.SetValue(a)
		inputs = append(inputs, ti)
	}
	for _, t := range m.form.Tags {
		ti := newField("Tag")
		ti.SetValue(t)
		inputs = append(inputs, ti)
	}
	m.inputs = inputs
}

func (m *SubmitPageModel) setFocus(i int) {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m SubmitPageModel) authorIndex() (int, bool) {
	i := m.focus - fieldFixedCount
	if i >= 0 && i < len(m.form.Authors) {
		return i, true
	}
	return 0, false
}

func (m SubmitPageModel) tagIndex() (int, bool) {
	i := m.focus - fieldFixedCount - len(m.form.Authors)
	if i >= 0 && i < len(m.form.Tags) {
		return i, true
	}
	return 0, false
}

// syncForm copies the focused input's value back into the form.
func (m *SubmitPageModel) syncForm() {
	v := m.inputs[m.focus].Value()
	switch m.focus {
	case fieldTitle:
		m.form.Title = v
	case fieldAbstract:
		m.form.Abstract = v
	case fieldInstitution:
		m.form.Institution = v
	case fieldDOI:
		m.form.DOI = v
	case fieldFile:
		m.fileErr = ""
		m.form.FileName = ""
		if v != "" {
			if err := m.form.SetFile(v); err != nil {
				m.fileErr = err.Error()
			}
		}
	default:
		if i, ok := m.authorIndex(); ok {
			m.form.SetAuthor(i, v)
		} else if i, ok := m.tagIndex(); ok {
			m.form.SetTag(i, v)
		}
	}
}

// Update handles messages.
func (m SubmitPageModel) Update(msg tea.Msg) (SubmitPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.isSubmitting = false
		m.status = submit.Confirmation
		m.form.Reset()
		m.catIdx = 0
		m.rebuildInputs()
		m.setFocus(fieldTitle)
		return m, nil

	case spinner.TickMsg:
		if !m.isSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.isSubmitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "left", "right":
			if m.focus == fieldCategory {
				step := 1
				if msg.String() == "left" {
					step = len(submit.Categories) - 1
				}
				m.catIdx = (m.catIdx + step) % len(submit.Categories)
				m.form.Category = submit.Categories[m.catIdx].Value
				return m, nil
			}
		case "ctrl+n":
			// Add an entry to whichever dynamic list is focused.
			if _, ok := m.authorIndex(); ok {
				m.form.AddAuthor()
				m.rebuildInputs()
				m.setFocus(fieldFixedCount + len(m.form.Authors) - 1)
				return m, nil
			}
			if _, ok := m.tagIndex(); ok {
				m.form.AddTag()
				m.rebuildInputs()
				m.setFocus(len(m.inputs) - 1)
				return m, nil
			}
		case "ctrl+d":
			// Remove the focused entry; the form keeps the last one.
			if i, ok := m.authorIndex(); ok {
				if m.form.RemoveAuthor(i) {
					m.rebuildInputs()
					m.setFocus(fieldFixedCount)
				}
				return m, nil
			}
			if i, ok := m.tagIndex(); ok {
				if m.form.RemoveTag(i) {
					m.rebuildInputs()
					m.setFocus(fieldFixedCount + len(m.form.Authors))
				}
				return m, nil
			}
		case "ctrl+s":
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncForm()
	return m, cmd
}

// submitForm starts the simulated submission if the draft validates.
func (m SubmitPageModel) submitForm() (SubmitPageModel, tea.Cmd) {
	if !m.form.CanSubmit() {
		if err := m.form.Validate(); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}
	m.isSubmitting = true
	m.status = ""
	done := m.delay(submit.SubmitDelay, func() tea.Msg {
		return submitDoneMsg{}
	})
	return m, tea.Batch(done, m.spinner.Tick)
}

func (m SubmitPageModel) renderField(label string, idx int) string {
	s := m.styles
	marker := "  "
	if idx == m.focus {
		marker = s.Info.Render("> ")
	}
	return fmt.Sprintf("%s%-14s %s", marker, s.Muted.Render(label), m.inputs[idx].View())
}

// View renders the page.
func (m SubmitPageModel) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Submit Research Paper") + "\n")
	sb.WriteString(s.Muted.Render("Share your research with the decentralized academic community") + "\n\n")

	sb.WriteString(m.renderField("Title", fieldTitle) + "\n")
	sb.WriteString(m.renderField("Abstract", fieldAbstract) + "\n")
	sb.WriteString(m.renderField("Institution", fieldInstitution) + "\n")

	catMarker := "  "
	if m.focus == fieldCategory {
		catMarker = s.Info.Render("> ")
	}
	sb.WriteString(fmt.Sprintf("%s%-14s %s\n", catMarker, s.Muted.Render("Category"),
		s.TabActive.Render(submit.Categories[m.catIdx].Label)))

	sb.WriteString(m.renderField("DOI", fieldDOI) + "\n")
	sb.WriteString(m.renderField("File", fieldFile) + "\n")
	if m.fileErr != "" {
		sb.WriteString("  " + s.Error.Render(m.fileErr) + "\n")
	}

	sb.WriteString("\n" + s.Bold.Render("Authors") + "\n")
	for i := range m.form.Authors {
		sb.WriteString(m.renderField(fmt.Sprintf("Author %d", i+1), fieldFixedCount+i) + "\n")
	}
	sb.WriteString("\n" + s.Bold.Render("Tags") + "\n")
	for i := range m.form.Tags {
		sb.WriteString(m.renderField(fmt.Sprintf("Tag %d", i+1), fieldFixedCount+len(m.form.Authors)+i) + "\n")
	}

	sb.WriteString("\n")
	switch {
	case m.isSubmitting:
		sb.WriteString(m.spinner.View() + s.Muted.Render(" Submitting paper...") + "\n")
	case m.status == submit.Confirmation:
		sb.WriteString(s.Success.Render(m.status) + "\n")
	case m.status != "":
		sb.WriteString(s.Warning.Render(m.status) + "\n")
	case m.form.CanSubmit():
		sb.WriteString(s.Info.Render("ctrl+s submit") + "\n")
	default:
		sb.WriteString(s.Muted.Render("Fill in title, abstract, an author, and a file to submit") + "\n")
	}
	sb.WriteString(s.Footer.Render("tab/↑↓ move · ←/→ category · ctrl+n add entry · ctrl+d remove · ctrl+s submit"))

	return sb.String()
}
