package event

import (
	"strings"
	"testing"
)

func TestTitleKey(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jazz Night", "jazz night"},
		{"  Jazz Night  ", "jazz night"},
		{"JAZZ NIGHT", "jazz night"},
	}

	for _, tt := range tests {
		evt := &Event{Title: tt.title}
		if got := evt.TitleKey(); got != tt.want {
			t.Errorf("TitleKey(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestTruncateDescription(t *testing.T) {
	short := "a short description"
	if got := TruncateDescription(short); got != short {
		t.Errorf("short input should be unchanged, got %q", got)
	}

	long := strings.Repeat("x", MaxDescriptionLen+50)
	got := TruncateDescription(long)
	if len([]rune(got)) != MaxDescriptionLen+3 {
		t.Errorf("truncated length = %d runes, want %d", len([]rune(got)), MaxDescriptionLen+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated description should end with ellipsis, got %q", got[len(got)-10:])
	}

	exact := strings.Repeat("y", MaxDescriptionLen)
	if got := TruncateDescription(exact); got != exact {
		t.Error("input at the bound should be unchanged")
	}
}
