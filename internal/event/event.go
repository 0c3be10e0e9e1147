// internal/event/event.go
package event

import "log"

// EventType - тип события
type EventType string

// Event - дискретное событие ядра. Data несёт полезную нагрузку события
// (см. types.go), подписчик сам приводит её к нужному типу.
type Event struct {
	Type EventType
	Data any
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. It cannot be unsubscribed.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher - синхронный диспетчер: Dispatch вызывает подписчиков сразу,
// в том же тике, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.any {
		listener.OnEvent(event)
	}
}

// Logger пишет жизненные события игры в стандартный лог.
type Logger struct{}

func (Logger) OnEvent(e Event) {
	if e.Data == nil {
		log.Printf("[event] %s", e.Type)
		return
	}
	log.Printf("[event] %s %+v", e.Type, e.Data)
}
