package console

// Axis is a logical axis of the console.
type Axis int

// List of valid Axis values.
const (
	Horz Axis = iota
	Vert
)

func (a Axis) String() string {
	switch a {
	case Horz:
		return "horz"
	case Vert:
		return "vert"
	}
	return "unknown axis"
}

// Button is a logical button of the console.
type Button int

// List of valid Button values.
const (
	Button1 Button = iota
	Button2
	Button3

	// not displayed as a button. returns the axes to rest when pressed
	ButtonReset
)

func (b Button) String() string {
	switch b {
	case Button1:
		return "B1"
	case Button2:
		return "B2"
	case Button3:
		return "B3"
	case ButtonReset:
		return "RESET"
	}
	return "unknown button"
}
