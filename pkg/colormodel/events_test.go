package colormodel

import "testing"

func TestSubscribeReceivesEventsInOrder(t *testing.T) {
	m := New(Channels{})
	var got []Event
	m.Subscribe(func(e Event) { got = append(got, e) })

	m.SetChannel(Red, 100)
	m.Commit()

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	cc, ok := got[0].(ChannelChanged)
	if !ok {
		t.Fatalf("event[0] = %T, want ChannelChanged", got[0])
	}
	if cc.Channel != Red || cc.Value != 100 {
		t.Errorf("ChannelChanged = %+v", cc)
	}
	cm, ok := got[1].(Committed)
	if !ok {
		t.Fatalf("event[1] = %T, want Committed", got[1])
	}
	if cm.Channels.R != 100 || cm.Color != m.CurrentColor() {
		t.Errorf("Committed = %+v", cm)
	}
}

func TestSubscribeNoEventWhenValueUnchanged(t *testing.T) {
	m := New(Channels{R: 255})
	n := 0
	m.Subscribe(func(Event) { n++ })

	m.SetChannel(Red, 300) // clamps to the current 255
	if n != 0 {
		t.Errorf("got %d events for a no-op edit, want 0", n)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	m := New(Channels{})
	var a, b int
	cancelA := m.Subscribe(func(Event) { a++ })
	m.Subscribe(func(Event) { b++ })

	m.SetChannel(Green, 1)
	cancelA()
	cancelA()
	m.SetChannel(Green, 2)

	if a != 1 {
		t.Errorf("cancelled subscriber got %d events, want 1", a)
	}
	if b != 2 {
		t.Errorf("live subscriber got %d events, want 2", b)
	}
}

func TestSubscriberMayCancelItself(t *testing.T) {
	m := New(Channels{})
	calls := 0
	var cancel func()
	cancel = m.Subscribe(func(Event) {
		calls++
		cancel()
	})
	other := 0
	m.Subscribe(func(Event) { other++ })

	m.Commit()
	m.Commit()

	if calls != 1 {
		t.Errorf("self-cancelling subscriber called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other subscriber called %d times, want 2", other)
	}
}

func TestSubscribeNil(t *testing.T) {
	m := New(Channels{})
	cancel := m.Subscribe(nil)
	cancel()
	m.Commit()
}
