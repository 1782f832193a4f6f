package input

// Mouse input is not yet supported. The following functions reserve the
// interface and always report an idle mouse.

// MousePosition returns the position of the mouse pointer.
func (m *Manager[A, B]) MousePosition() (float64, float64) {
	return 0, 0
}

// MouseScrollDelta returns the scroll wheel movement since the last frame.
func (m *Manager[A, B]) MouseScrollDelta() (float64, float64) {
	return 0, 0
}

// MouseButton returns true if the numbered mouse button is pressed.
func (m *Manager[A, B]) MouseButton(_ int) bool {
	return false
}

// MouseButtonDown is the same as MouseButton().
func (m *Manager[A, B]) MouseButtonDown(button int) bool {
	return m.MouseButton(button)
}

// MouseButtonUp returns true if the numbered mouse button is not pressed.
func (m *Manager[A, B]) MouseButtonUp(button int) bool {
	return !m.MouseButton(button)
}
