package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestNewDriverAcquiredEvent(t *testing.T) {
	g := NewWithT(t)

	tm := time.UnixMilli(123)
	now = func() time.Time { return tm }
	defer func() { now = time.Now }()

	attrs := DriverAcquired{
		TestName: "login",
		Status:   "replaced",
		Duration: time.Second,
		Error:    errors.New("test"),
	}
	e := NewDriverAcquiredEvent(attrs)
	g.Expect(e.EventType()).To(Equal(DriverAcquiredEventType))
	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.Attributes).To(Equal(attrs))
}

func TestNewDriverClosedEvent(t *testing.T) {
	g := NewWithT(t)

	e := NewDriverClosedEvent(DriverClosed{Lifetime: time.Minute})
	g.Expect(e.EventType()).To(Equal(DriverClosedEventType))
	g.Expect(e.EventTime()).ToNot(BeZero())
	g.Expect(e.Attributes.Lifetime).To(Equal(time.Minute))
}
