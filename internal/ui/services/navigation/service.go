package navigation

// Service moves a cursor over items laid out row-major in a grid
type Service struct {
	state   State
	onMoved func(CursorMovedEvent)
}

// NewService creates a service with a single column and row
func NewService() *Service {
	return &Service{state: State{Rows: 1, Columns: 1}}
}

// OnMoved registers a callback fired whenever the cursor changes
func (s *Service) OnMoved(fn func(CursorMovedEvent)) {
	s.onMoved = fn
}

// State returns a copy of the current state
func (s *Service) State() State { return s.state }

// GetCursor returns current cursor position
func (s *Service) GetCursor() int { return s.state.Cursor }

// SetCount updates the number of items and clamps the cursor
func (s *Service) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Count = n
	s.MoveToIndex(s.state.Cursor)
}

// SetLayout updates the grid dimensions
func (s *Service) SetLayout(columns, rows int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.state.Columns = columns
	s.state.Rows = rows
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	cols := s.state.Columns
	page := cols * s.state.Rows

	target := s.state.Cursor
	switch direction {
	case DirectionUp:
		if target-cols < 0 {
			return
		}
		target -= cols
	case DirectionDown:
		if target+cols > s.maxIndex() {
			return
		}
		target += cols
	case DirectionLeft:
		target--
	case DirectionRight:
		target++
	case DirectionPageUp:
		target -= page
	case DirectionPageDown:
		target += page
	case DirectionHome:
		target = 0
	case DirectionEnd:
		target = s.maxIndex()
	}
	s.MoveToIndex(target)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	old := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if old != s.state.Cursor && s.onMoved != nil {
		s.onMoved(CursorMovedEvent{OldIndex: old, NewIndex: s.state.Cursor})
	}
}

// IndexAt returns the item shown at the given visible row and column
func (s *Service) IndexAt(row, col int) (int, bool) {
	if row < 0 || col < 0 || col >= s.state.Columns || row >= s.state.Rows {
		return 0, false
	}
	idx := (s.state.RowOffset+row)*s.state.Columns + col
	if idx >= s.state.Count {
		return 0, false
	}
	return idx, true
}

func (s *Service) maxIndex() int {
	if s.state.Count == 0 {
		return 0
	}
	return s.state.Count - 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.maxIndex() {
		return s.maxIndex()
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.state.Cursor / s.state.Columns
	if row < s.state.RowOffset {
		s.state.RowOffset = row
	} else if row >= s.state.RowOffset+s.state.Rows {
		s.state.RowOffset = row - s.state.Rows + 1
	}
}
