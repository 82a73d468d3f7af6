package engine

// Population-edit helpers. These are plain list operations over a mode's
// exposed dot list, not part of the tick algorithm, and must only run
// between ticks (the engine is single-threaded, so "between ticks" means
// "not from inside an Update callback").

// AddDots appends n freshly spawned dots of the given group.
func AddDots(m Mode, n, group int, spawn SpawnFunc) {
	if n <= 0 {
		return
	}
	dots := m.Dots()
	group = wrapGroup(group, m.Controls().PaletteSize)
	for i := 0; i < n; i++ {
		dots = append(dots, spawn(group))
	}
	m.SetDots(dots)
}

// RemoveDots removes up to n dots of the given group and returns how many
// were actually removed.
func RemoveDots(m Mode, n, group int) int {
	if n <= 0 {
		return 0
	}
	dots := m.Dots()
	kept := dots[:0]
	removed := 0
	for _, d := range dots {
		if removed < n && d.Group == group {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	// Drop trailing references so removed dots are collectable.
	for i := len(kept); i < len(dots); i++ {
		dots[i] = nil
	}
	m.SetDots(kept)
	return removed
}

// ReassignAll moves every dot to the given group.
func ReassignAll(m Mode, group int) {
	group = wrapGroup(group, m.Controls().PaletteSize)
	for _, d := range m.Dots() {
		d.Group = group
	}
}
