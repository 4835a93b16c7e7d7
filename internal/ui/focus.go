package ui

// FocusManager tracks and rotates focus across tiles.
type FocusManager struct {
	Current  string   // ID of the currently focused tile
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next tile in order and returns the new ID.
func (f *FocusManager) Next() string {
	return f.advance(1)
}

// Prev advances focus to the previous tile in order.
func (f *FocusManager) Prev() string {
	return f.advance(-1)
}

func (f *FocusManager) advance(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	from := f.Current
	next := (idx + step + len(f.Order)) % len(f.Order)
	f.Current = f.Order[next]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus sets focus to the given tile ID. Returns true if the ID exists
// in the tab order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}
