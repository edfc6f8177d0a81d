package models

import "time"

const (
	DriverAcquiredEventType = "DriverAcquired"
	DriverClosedEventType   = "DriverClosed"
)

// DriverAcquired is published for every driver request to a manager, successful or not.
// Status is "unknown" when no driver could be created at all.
type DriverAcquired struct {
	TestName string
	Status   string
	Duration time.Duration
	Error    error
}

// DriverClosed is published when a manager closes its active driver.
type DriverClosed struct {
	Lifetime time.Duration
}

func NewDriverAcquiredEvent(d DriverAcquired) *Event[DriverAcquired] {
	return NewEvent(DriverAcquiredEventType, now(), d)
}

func NewDriverClosedEvent(d DriverClosed) *Event[DriverClosed] {
	return NewEvent(DriverClosedEventType, now(), d)
}

var now = time.Now

type IEvent interface {
	EventTime() time.Time
	EventType() string
}

// Event carries typed attributes of a single occurrence.
type Event[T any] struct {
	eventTime  time.Time
	eventType  string
	Attributes T
}

func (e *Event[T]) EventTime() time.Time {
	return e.eventTime
}

func (e *Event[T]) EventType() string {
	return e.eventType
}

func NewEvent[T any](eventType string, evTime time.Time, attributes T) *Event[T] {
	return &Event[T]{
		eventTime:  evTime,
		eventType:  eventType,
		Attributes: attributes,
	}
}
