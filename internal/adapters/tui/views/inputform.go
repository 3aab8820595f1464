package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookkeeper/internal/adapters/tui/styles"
	"bookkeeper/internal/domain"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
	Prev   key.Binding
	Next   key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous choice"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next choice"),
	),
}

// InputField represents a single input field with label and textinput
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a new input field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// Picker selects one parent from the dropdown entries of a session
type Picker struct {
	Label    string
	Entries  []domain.DropdownEntry
	Selected int
}

// NewPicker creates a picker over entries with the first entry selected
func NewPicker(label string, entries []domain.DropdownEntry) *Picker {
	return &Picker{Label: label, Entries: entries}
}

// Next selects the following entry, wrapping around
func (p *Picker) Next() {
	if len(p.Entries) == 0 {
		return
	}
	p.Selected = (p.Selected + 1) % len(p.Entries)
}

// Prev selects the preceding entry, wrapping around
func (p *Picker) Prev() {
	if len(p.Entries) == 0 {
		return
	}
	p.Selected = (p.Selected - 1 + len(p.Entries)) % len(p.Entries)
}

// Select moves the selection to the entry carrying k.
// A nil or unknown k selects the blank entry.
func (p *Picker) Select(k *domain.Key) {
	p.Selected = 0
	if k == nil {
		return
	}
	for i, e := range p.Entries {
		if e.Key != nil && *e.Key == *k {
			p.Selected = i
			return
		}
	}
}

// Value returns the selected key, nil for "no parent"
func (p *Picker) Value() *domain.Key {
	if p.Selected < 0 || p.Selected >= len(p.Entries) {
		return nil
	}
	return p.Entries[p.Selected].Key
}

func (p *Picker) view() string {
	if p.Selected < 0 || p.Selected >= len(p.Entries) {
		return ""
	}
	e := p.Entries[p.Selected]
	if e.Key == nil {
		return styles.MutedText.Render("(no parent)")
	}
	return strings.Repeat("· ", e.Depth) + e.Label
}

// InputForm manages text input fields and an optional trailing picker.
// Focus indexes fields first; the picker, if any, is the last stop.
type InputForm struct {
	Fields       []InputField
	Picker       *Picker
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		Keys:   DefaultInputFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// WithPicker attaches a picker after the text fields
func (f *InputForm) WithPicker(p *Picker) *InputForm {
	f.Picker = p
	return f
}

func (f *InputForm) stops() int {
	if f.Picker != nil {
		return len(f.Fields) + 1
	}
	return len(f.Fields)
}

// PickerFocused reports whether the picker has focus
func (f *InputForm) PickerFocused() bool {
	return f.Picker != nil && f.FocusedField == len(f.Fields)
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.Keys.Tab):
			f.NextField()
			return true, nil
		case f.PickerFocused() && key.Matches(msg, f.Keys.Next):
			f.Picker.Next()
			return true, nil
		case f.PickerFocused() && key.Matches(msg, f.Keys.Prev):
			f.Picker.Prev()
			return true, nil
		}
	}

	if f.PickerFocused() {
		return false, nil
	}

	var cmd tea.Cmd
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the next stop
func (f *InputForm) NextField() {
	if f.stops() <= 1 {
		return
	}
	f.SetFocus((f.FocusedField + 1) % f.stops())
}

// SetFocus sets focus to a specific stop
func (f *InputForm) SetFocus(index int) {
	if index < 0 || index >= f.stops() {
		return
	}

	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input.Blur()
	}

	f.FocusedField = index
	if index < len(f.Fields) {
		f.Fields[index].Input.Focus()
	}
}

// Value returns the value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets the value of a field by index
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
	f.Fields[index].Input.CursorEnd()
}

// Reset clears all field values and resets focus to the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
		f.Fields[i].Input.Blur()
	}
	if f.Picker != nil {
		f.Picker.Selected = 0
	}
	f.FocusedField = 0
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
}

// View renders every field followed by the picker
func (f *InputForm) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		b.WriteString(styles.InputLabel.Render(field.Label))
		b.WriteString("\n")
		if i == f.FocusedField {
			b.WriteString(styles.InputFocused.Render(field.Input.View()))
		} else {
			b.WriteString(styles.InputField.Render(field.Input.View()))
		}
		b.WriteString("\n")
	}

	if f.Picker != nil {
		b.WriteString(styles.InputLabel.Render(f.Picker.Label))
		b.WriteString("\n")
		if f.PickerFocused() {
			b.WriteString(styles.InputFocused.Render("◀ " + f.Picker.view() + " ▶"))
		} else {
			b.WriteString(styles.InputField.Render(f.Picker.view()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	var parts []string

	if f.stops() > 1 {
		parts = append(parts, styles.HelpKey.Render("tab")+" "+styles.HelpDesc.Render("next field"))
	}
	if f.PickerFocused() {
		parts = append(parts, styles.HelpKey.Render("↑/↓")+" "+styles.HelpDesc.Render("choose parent"))
	}
	parts = append(parts, styles.HelpKey.Render("enter")+" "+styles.HelpDesc.Render(submitText))
	parts = append(parts, styles.HelpKey.Render("esc")+" "+styles.HelpDesc.Render("cancel"))

	return strings.Join(parts, "  ")
}
