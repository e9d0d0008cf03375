package episode

import "testing"

func TestNumberFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  int
		ok    bool
	}{
		{"Episode 42: The Answer", 42, true},
		{"episode 7", 7, true},
		{"EPISODE   3 - something", 3, true},
		{"A show about episodes", 0, false},
		{"Ep 12", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := NumberFromTitle(tt.title)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NumberFromTitle(%q) = (%d, %v), want (%d, %v)", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}
