package colormodel

// Event is delivered to subscribers after a mutation has been applied.
type Event interface {
	event()
}

// ChannelChanged reports a new live value on one channel.
type ChannelChanged struct {
	Channel Channel
	Value   float64
}

func (ChannelChanged) event() {}

// Committed reports a commit. Channels holds the values that produced Color.
type Committed struct {
	Color    Color
	Channels Channels
}

func (Committed) event() {}

type subscription struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after every mutation,
// in registration order. The returned cancel func removes the subscriber
// and may be called more than once.
func (m *Model) Subscribe(fn func(Event)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) publish(e Event) {
	// Copy so a subscriber may cancel itself mid-delivery.
	subs := append([]subscription(nil), m.subs...)
	for _, s := range subs {
		s.fn(e)
	}
}
