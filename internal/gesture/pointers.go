package gesture

import "lightbox/internal/viewport"

// MaxPointers is how many simultaneous pointers a gesture can use
const MaxPointers = 2

type trackedPointer struct {
	id    int
	start viewport.Point
	pos   viewport.Point
	inUse bool
}

// Tracker holds at most MaxPointers active pointers. Further pointers
// are refused until a slot frees up.
type Tracker struct {
	slots [MaxPointers]trackedPointer
}

// Len returns the number of active pointers
func (t *Tracker) Len() int {
	n := 0
	for _, s := range t.slots {
		if s.inUse {
			n++
		}
	}
	return n
}

// Add starts tracking id at p. It reports false when id is already
// tracked or every slot is taken.
func (t *Tracker) Add(id int, p viewport.Point) bool {
	if t.indexOf(id) >= 0 {
		return false
	}
	for i := range t.slots {
		if !t.slots[i].inUse {
			t.slots[i] = trackedPointer{id: id, start: p, pos: p, inUse: true}
			return true
		}
	}
	return false
}

// Update records a new position for id
func (t *Tracker) Update(id int, p viewport.Point) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.slots[i].pos = p
	return true
}

// Remove stops tracking id
func (t *Tracker) Remove(id int) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.slots[i] = trackedPointer{}
	return true
}

// Clear drops every pointer
func (t *Tracker) Clear() {
	t.slots = [MaxPointers]trackedPointer{}
}

// Has reports whether id is tracked
func (t *Tracker) Has(id int) bool {
	return t.indexOf(id) >= 0
}

// Position returns the last known position of id
func (t *Tracker) Position(id int) (viewport.Point, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return viewport.Point{}, false
	}
	return t.slots[i].pos, true
}

// Travel returns how far id has moved from where it went down
func (t *Tracker) Travel(id int) float64 {
	i := t.indexOf(id)
	if i < 0 {
		return 0
	}
	return viewport.Distance(t.slots[i].start, t.slots[i].pos)
}

// First returns the position of the only remaining pointer
func (t *Tracker) First() (viewport.Point, bool) {
	for _, s := range t.slots {
		if s.inUse {
			return s.pos, true
		}
	}
	return viewport.Point{}, false
}

// Pair returns both pointer positions when two pointers are active
func (t *Tracker) Pair() (viewport.Point, viewport.Point, bool) {
	if t.Len() != MaxPointers {
		return viewport.Point{}, viewport.Point{}, false
	}
	return t.slots[0].pos, t.slots[1].pos, true
}

func (t *Tracker) indexOf(id int) int {
	for i, s := range t.slots {
		if s.inUse && s.id == id {
			return i
		}
	}
	return -1
}
