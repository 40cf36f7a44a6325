package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labelled input inside a modal form.
type formField struct {
	label       string
	placeholder string
	required    bool
	input       textinput.Model
}

// form is the inline modal used for add-milestone, add-log and add-watcher.
// Enter advances, the last enter submits, esc cancels.
type form struct {
	title  string
	fields []formField
	focus  int
	errMsg string

	submitted bool
	cancelled bool
}

func newFormField(label, placeholder string, required bool) formField {
	in := textinput.New()
	in.Width = 48
	in.CharLimit = 500
	in.Placeholder = placeholder
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return formField{label: label, placeholder: placeholder, required: required, input: in}
}

func newForm(title string, fields ...formField) *form {
	f := &form{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// value returns the trimmed content of field i.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// Update routes a key to the form. It reports submit/cancel through the
// submitted and cancelled flags.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch key.String() {
	case "esc":
		f.cancelled = true
		return nil
	case "enter":
		if f.value(f.focus) == "" && f.fields[f.focus].required {
			f.errMsg = f.fields[f.focus].label + " is required"
			return nil
		}
		f.errMsg = ""
		if f.focus == len(f.fields)-1 {
			if i, ok := f.firstMissing(); ok {
				f.errMsg = f.fields[i].label + " is required"
				f.setFocus(i)
				return nil
			}
			f.submitted = true
			return nil
		}
		f.setFocus(f.focus + 1)
		return nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.fields))
		return nil
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		return nil
	}

	return f.updateFocused(msg)
}

func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) setFocus(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[i].input.Focus()
}

func (f *form) firstMissing() (int, bool) {
	for i := range f.fields {
		if f.fields[i].required && f.value(i) == "" {
			return i, true
		}
	}
	return 0, false
}

// View renders the modal box.
func (f *form) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusedLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i, fld := range f.fields {
		label := fld.label
		if fld.required {
			label += " *"
		}
		style := labelStyle
		if i == f.focus {
			style = focusedLabel
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(fld.input.View())
		b.WriteString("\n\n")
	}
	if f.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter: next/submit • tab: move • esc: cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}
