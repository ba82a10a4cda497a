package engine

// Event is a multi-cast signal: any number of listeners subscribe and every
// Invoke calls them all in subscription order. Components expose these for
// the moments other layers care about, deaths and stage completions mostly.
type Event struct {
	listeners []func()
}

// AddListener subscribes a callback. Nil callbacks are dropped, so Invoke
// never has to re-check.
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// GetListenerCount reports how many listeners are subscribed.
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is Event carrying one value to every listener.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
