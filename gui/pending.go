package gui

// maximum number of key events held by Pending
const maxPending = 256

// Pending holds key events that could not yet be sent on the UserInput
// channel. Events are sent in the order they were pushed.
//
// When the queue is full a new press is discarded. A new release replaces the
// oldest queued press so that a key is never left latched.
type Pending struct {
	queue []Input
}

// Push adds an event to the end of the queue.
func (p *Pending) Push(inp Input) {
	if len(p.queue) >= maxPending {
		if inp.Pressed {
			return
		}
		for i, q := range p.queue {
			if q.Pressed {
				p.queue = append(p.queue[:i], p.queue[i+1:]...)
				break
			}
		}
		if len(p.queue) >= maxPending {
			p.queue = p.queue[1:]
		}
	}
	p.queue = append(p.queue, inp)
}

// Flush sends queued events on the channel until the queue is empty or the
// channel is full. Sends do not block. Returns the number of events still
// queued.
func (p *Pending) Flush(ch chan Input) int {
	var n int
	for _, inp := range p.queue {
		select {
		case ch <- inp:
			n++
		default:
			p.queue = append(p.queue[:0], p.queue[n:]...)
			return len(p.queue)
		}
	}
	p.queue = p.queue[:0]
	return 0
}

// Len returns the number of queued events.
func (p *Pending) Len() int {
	return len(p.queue)
}
