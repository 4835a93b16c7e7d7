package ui

import "testing"

func TestFocusManager_NextWraps(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b", "c"}}
	if got := f.Next(); got != "b" {
		t.Errorf("Next: expected b, got %q", got)
	}
	f.Current = "c"
	if got := f.Next(); got != "a" {
		t.Errorf("Next wrap: expected a, got %q", got)
	}
}

func TestFocusManager_PrevWraps(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b", "c"}}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev wrap: expected c, got %q", got)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if got := f.Next(); got != "" {
		t.Errorf("Next on empty: got %q", got)
	}
	if f.SetFocus("x") {
		t.Error("SetFocus on empty should return false")
	}
}

func TestFocusManager_OnChange(t *testing.T) {
	var from, to string
	calls := 0
	f := &FocusManager{
		Current: "a",
		Order:   []string{"a", "b"},
		OnChange: func(f2, t2 string) {
			from, to = f2, t2
			calls++
		},
	}
	f.Next()
	if from != "a" || to != "b" || calls != 1 {
		t.Errorf("OnChange: from=%q to=%q calls=%d", from, to, calls)
	}
	// Setting the same focus again must not fire
	f.SetFocus("b")
	if calls != 1 {
		t.Errorf("OnChange fired on no-op focus: calls=%d", calls)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b"}}
	if !f.SetFocus("b") {
		t.Error("SetFocus(b) should succeed")
	}
	if f.Current != "b" {
		t.Errorf("Current = %q", f.Current)
	}
	if f.SetFocus("zzz") {
		t.Error("SetFocus on unknown ID should fail")
	}
}
