package text

import "testing"

func TestPunktSplitter_Split(t *testing.T) {
	s, err := NewPunktSplitter()
	if err != nil {
		t.Fatalf("NewPunktSplitter() error: %v", err)
	}

	got := s.Split("The first sentence ends here. The second one follows it.")
	want := []string{"The first sentence ends here.", "The second one follows it."}

	if len(got) != len(want) {
		t.Fatalf("Split() returned %d sentences, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPunktSplitter_Empty(t *testing.T) {
	s, err := NewPunktSplitter()
	if err != nil {
		t.Fatalf("NewPunktSplitter() error: %v", err)
	}

	if got := s.Split(""); len(got) != 0 {
		t.Errorf("Split(\"\") = %q, want no sentences", got)
	}
	if got := s.Split("   \n "); len(got) != 0 {
		t.Errorf("Split(whitespace) = %q, want no sentences", got)
	}
}
