package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "x")),
	All:     key.NewBinding(key.WithKeys("a")),
	None:    key.NewBinding(key.WithKeys("n")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Cancel:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}

// PickerItem is a selectable file in the picker
type PickerItem struct {
	Label   string
	Detail  string // secondary text such as the file size
	Value   string
	Checked bool
}

// FilePickerModel is the bubbletea model for choosing which files to transcribe
type FilePickerModel struct {
	title     string
	items     []PickerItem
	cursor    int
	done      bool
	minSelect int
}

// NewFilePickerModel creates a picker with every item preselected
func NewFilePickerModel(title string, items []PickerItem) FilePickerModel {
	for i := range items {
		items[i].Checked = true
	}
	return FilePickerModel{
		title:     title,
		items:     items,
		minSelect: 1,
	}
}

func (m FilePickerModel) Init() tea.Cmd {
	return nil
}

func (m FilePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Toggle):
		if len(m.items) > 0 {
			m.items[m.cursor].Checked = !m.items[m.cursor].Checked
		}
	case key.Matches(keyMsg, pickerKeys.All):
		m.setAll(true)
	case key.Matches(keyMsg, pickerKeys.None):
		m.setAll(false)
	case key.Matches(keyMsg, pickerKeys.Confirm):
		if m.countSelected() >= m.minSelect {
			m.done = true
			return m, tea.Quit
		}
	case key.Matches(keyMsg, pickerKeys.Cancel):
		m.done = false
		m.setAll(false)
		return m, tea.Quit
	}
	return m, nil
}

func (m FilePickerModel) setAll(checked bool) {
	for i := range m.items {
		m.items[i].Checked = checked
	}
}

func (m FilePickerModel) countSelected() int {
	count := 0
	for _, item := range m.items {
		if item.Checked {
			count++
		}
	}
	return count
}

func (m FilePickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if item.Checked {
			checkbox = "[x]"
			style = checkedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, checkbox, item.Label)
		sb.WriteString(style.Render(line))
		if item.Detail != "" {
			sb.WriteString("  ")
			sb.WriteString(dimStyle.Render(item.Detail))
		}
		sb.WriteString("\n")
	}

	selected := m.countSelected()
	sb.WriteString(fmt.Sprintf("\n%d of %d selected", selected, len(m.items)))
	if selected < m.minSelect {
		sb.WriteString(fmt.Sprintf(" (select at least %d)", m.minSelect))
	}
	sb.WriteString("\n(space=toggle, a=all, n=none, enter=confirm, q=cancel)\n")

	return sb.String()
}

// Selected returns the values of the checked items in list order
func (m FilePickerModel) Selected() []string {
	var result []string
	for _, item := range m.items {
		if item.Checked {
			result = append(result, item.Value)
		}
	}
	return result
}

// Cancelled returns true if the user cancelled
func (m FilePickerModel) Cancelled() bool {
	return !m.done
}

// RunFilePicker displays the picker and returns the selected values.
// A nil result means the user cancelled.
func RunFilePicker(title string, items []PickerItem) ([]string, error) {
	model := NewFilePickerModel(title, items)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(FilePickerModel)
	if result.Cancelled() {
		return nil, nil
	}
	return result.Selected(), nil
}
