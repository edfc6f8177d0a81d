package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wtframework/wtf/pkg/event/models"
)

type EventBroker interface {
	Subscribe(eventTypes ...string) <-chan models.IEvent
	Publish(event models.IEvent)
}

// Broker fans published events out to subscribers of their type. Events are dropped, not queued,
// when a subscriber channel is full, so publishers never block.
type Broker struct {
	mtx    sync.RWMutex
	subs   map[string][]chan models.IEvent
	bSize  int
	closed bool
	l      *zap.SugaredLogger
}

func NewBroker(bufferSize int, l *zap.Logger) *Broker {
	return &Broker{
		subs:  make(map[string][]chan models.IEvent),
		bSize: bufferSize,
		l:     l.Sugar().Named("events"),
	}
}

// Subscribe returns a channel receiving events of the given types. It is closed on ShutDown.
func (b *Broker) Subscribe(eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	ch := make(chan models.IEvent, b.bSize)
	if b.closed {
		close(ch)
		return ch
	}
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}
	return ch
}

func (b *Broker) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	for _, ch := range b.subs[event.EventType()] {
		select {
		case ch <- event:
		default:
			b.l.With(zap.String("type", event.EventType())).
				Warnf("dropping published event, channel is full: length=%d", len(ch))
		}
	}
}

func (b *Broker) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	closed := make(map[chan models.IEvent]bool)
	for et, chs := range b.subs {
		for _, ch := range chs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.closed = true
	b.l.Debug("event broker shut down")
	return nil
}
