package navigation

// State holds the grid cursor and the visible window of rows
type State struct {
	Cursor    int
	RowOffset int // first visible row
	Rows      int // visible rows
	Columns   int
	Count     int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// CursorMovedEvent is passed to the move callback
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}
