package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m FilePickerModel, keys ...tea.KeyMsg) (FilePickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(FilePickerModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pickerItems() []PickerItem {
	return []PickerItem{
		{Label: "a.mp3", Value: "media/a.mp3"},
		{Label: "b.wav", Value: "media/b.wav"},
		{Label: "c.mp4", Value: "media/c.mp4"},
	}
}

func TestFilePicker_PreselectsAll(t *testing.T) {
	m := NewFilePickerModel("Pick", pickerItems())

	want := []string{"media/a.mp3", "media/b.wav", "media/c.mp4"}
	if got := m.Selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
}

func TestFilePicker_ToggleAndConfirm(t *testing.T) {
	m := NewFilePickerModel("Pick", pickerItems())

	m, cmd := press(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if m.Cancelled() {
		t.Error("Cancelled() = true after confirm")
	}
	want := []string{"media/a.mp3", "media/c.mp4"}
	if got := m.Selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
}

func TestFilePicker_RequiresSelection(t *testing.T) {
	m := NewFilePickerModel("Pick", pickerItems())

	m, cmd := press(m, runes("n"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with nothing selected should not quit")
	}
	if !strings.Contains(m.View(), "select at least 1") {
		t.Errorf("View() missing hint:\n%s", m.View())
	}

	m, _ = press(m, runes("a"))
	if len(m.Selected()) != 3 {
		t.Errorf("Selected() after select-all = %d items, want 3", len(m.Selected()))
	}
}

func TestFilePicker_Cancel(t *testing.T) {
	m := NewFilePickerModel("Pick", pickerItems())

	m, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if !m.Cancelled() {
		t.Error("Cancelled() = false after q")
	}
	if len(m.Selected()) != 0 {
		t.Errorf("Selected() = %v after cancel, want none", m.Selected())
	}
}

func TestFilePicker_View(t *testing.T) {
	items := pickerItems()
	items[0].Detail = "1.5 MB"
	m := NewFilePickerModel("Select files to transcribe:", items)

	view := m.View()
	for _, want := range []string{"Select files to transcribe:", "a.mp3", "1.5 MB", "3 of 3 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
