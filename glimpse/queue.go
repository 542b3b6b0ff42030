package glimpse

// eventQueue buffers events produced by platform callbacks until the
// event loop dispatches them. At most one RedrawRequested is pending at any time.
type eventQueue struct {
	events        []Event
	redrawPending bool
}

func (q *eventQueue) push(ev Event) {
	if _, ok := ev.(RedrawRequested); ok {
		if q.redrawPending {
			return
		}

		q.redrawPending = true
	}

	q.events = append(q.events, ev)
}

func (q *eventQueue) pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}

	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]

	if _, ok := ev.(RedrawRequested); ok {
		q.redrawPending = false
	}

	return ev, true
}

func (q *eventQueue) len() int {
	return len(q.events)
}

// drain dispatches the events that are pending when drain is called. Events
// queued by the handler while draining are kept for the next call.
// Stops at the first error or once stop returns true.
func (q *eventQueue) drain(dispatch func(Event) error, stop func() bool) error {
	for n := q.len(); n > 0 && !stop(); n-- {
		ev, _ := q.pop()

		if err := dispatch(ev); err != nil {
			return err
		}
	}

	return nil
}
