package input

import "testing"

func TestPresets_Next(t *testing.T) {
	p := NewPresets([]string{"00:00", "12:00", "18:45"})

	want := []string{"00:00", "12:00", "18:45", "00:00"}
	for i, w := range want {
		got, ok := p.Next()
		if !ok || got != w {
			t.Fatalf("Next() #%d = %q, %v, want %q", i, got, ok, w)
		}
	}
	if p.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", p.Selected())
	}
}

func TestPresets_Prev(t *testing.T) {
	p := NewPresets([]string{"00:00", "12:00", "18:45"})

	got, ok := p.Prev()
	if !ok || got != "18:45" {
		t.Fatalf("Prev() from nothing = %q, %v, want 18:45", got, ok)
	}
	got, _ = p.Prev()
	if got != "12:00" {
		t.Fatalf("Prev() = %q, want 12:00", got)
	}
	_, _ = p.Prev()
	got, _ = p.Prev()
	if got != "18:45" {
		t.Fatalf("Prev() should wrap, got %q", got)
	}
}

func TestPresets_Reset(t *testing.T) {
	p := NewPresets([]string{"09:15"})
	_, _ = p.Next()
	p.Reset()
	if p.Selected() != -1 {
		t.Errorf("Selected() after Reset = %d, want -1", p.Selected())
	}
}

func TestPresets_Empty(t *testing.T) {
	var p Presets
	if _, ok := p.Next(); ok {
		t.Error("Next() on empty presets should report false")
	}
	if _, ok := p.Prev(); ok {
		t.Error("Prev() on empty presets should report false")
	}
	if p.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", p.Selected())
	}
}

func TestNewPresets_CopiesValues(t *testing.T) {
	values := []string{"09:15"}
	p := NewPresets(values)
	values[0] = "10:00"
	if p.Values()[0] != "09:15" {
		t.Errorf("Values()[0] = %q, want 09:15", p.Values()[0])
	}
}
