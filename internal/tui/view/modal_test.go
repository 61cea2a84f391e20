package view

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestModalActions(t *testing.T) {
	tests := []struct {
		name  string
		modal Modal
		want  []string
	}{
		{"add form", Modal{Kind: ModalForm}, []string{"[Enter] Add", "[Tab] Next", "[Esc] Cancel"}},
		{"edit form", Modal{Kind: ModalForm, Editing: true}, []string{"[Enter] Save", "[Tab] Next", "[Esc] Cancel"}},
		{"confirm delete", Modal{Kind: ModalConfirm}, []string{"[y/Enter] Delete", "[n/Esc] Cancel"}},
		{"help", Modal{Kind: ModalHelp}, []string{"[Esc] Close"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.modal.Actions(); !slices.Equal(got, tt.want) {
				t.Errorf("Actions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderModal(t *testing.T) {
	chrome := ModalChrome{
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}

	out := RenderModal(Modal{Kind: ModalConfirm, Title: "Delete Activity", Body: "Deep work"}, chrome)
	for _, want := range []string{"Delete Activity", "Deep work", "[y/Enter] Delete", "[n/Esc] Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q:\n%s", want, out)
		}
	}
	if sep := chrome.Body.Render(" "); !strings.Contains(out, sep) {
		t.Error("buttons should be separated with the body style")
	}

	lines := strings.Split(RenderModal(Modal{Kind: ModalHelp, Title: "Help"}, chrome), "\n")
	if len(lines) != 3 || lines[2] != "[Esc] Close" {
		t.Errorf("help modal without body = %q", lines)
	}
}
