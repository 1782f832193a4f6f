// Package gui defines the communication between the window and the rest of
// the application. The window runs in its own goroutine and all exchanges are
// made through the channels in the GUI type.
package gui

// GUI is shared between the window implementation and the console.
type GUI struct {
	// key events from the window. sends are non-blocking so events may be
	// dropped if the channel is full
	UserInput chan Input

	// the most recent state of the console for display. the window should not
	// expect a new state every frame
	SetState chan State
}

// NewGUI creates the channels used by the GUI type.
func NewGUI() *GUI {
	return &GUI{
		UserInput: make(chan Input, 32),
		SetState:  make(chan State, 1),
	}
}
