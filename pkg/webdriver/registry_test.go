package webdriver

import (
	"context"
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap/zaptest"

	"github.com/wtframework/wtf/mocks"
)

func TestRegistry_AddRemove(t *testing.T) {
	g := NewWithT(t)

	reg := NewRegistry(zaptest.NewLogger(t))
	wd1 := mocks.NewWebDriver(t)
	wd2 := mocks.NewWebDriver(t)

	id1 := reg.Add(wd1)
	id2 := reg.Add(wd2)
	g.Expect(id1).ToNot(BeEmpty())
	g.Expect(id2).ToNot(Equal(id1))
	g.Expect(reg.Add(wd1)).To(Equal(id1))
	g.Expect(reg.Len()).To(Equal(2))
	g.Expect(reg.Drivers()).To(Equal([]selenium.WebDriver{wd1, wd2}))

	g.Expect(reg.Remove(wd1)).To(BeTrue())
	g.Expect(reg.Remove(wd1)).To(BeFalse())
	g.Expect(reg.Contains(wd1)).To(BeFalse())
	g.Expect(reg.Contains(wd2)).To(BeTrue())
	g.Expect(reg.Drivers()).To(Equal([]selenium.WebDriver{wd2}))
}

func TestRegistry_CleanUp(t *testing.T) {
	g := NewWithT(t)

	reg := NewRegistry(zaptest.NewLogger(t))
	wd1 := mocks.NewWebDriver(t)
	wd1.EXPECT().Quit().Return(errors.New("already gone")).Once()
	wd2 := mocks.NewWebDriver(t)
	wd2.EXPECT().Quit().Return(nil).Once()
	reg.Add(wd1)
	reg.Add(wd2)

	g.Expect(reg.CleanUp(context.Background())).To(Succeed())
	g.Expect(reg.Len()).To(BeZero())

	// drivers are quit once
	g.Expect(reg.CleanUp(context.Background())).To(Succeed())
}

func TestRegistry_CleanUpDisabled(t *testing.T) {
	g := NewWithT(t)

	reg := NewRegistry(zaptest.NewLogger(t))
	reg.SetShutdownHook(false)
	wd := mocks.NewWebDriver(t)
	reg.Add(wd)

	g.Expect(reg.CleanUp(context.Background())).To(Succeed())
	g.Expect(reg.Drivers()).To(ConsistOf(wd))
}

func TestRegistry_Concurrent(t *testing.T) {
	g := NewWithT(t)

	reg := NewRegistry(zaptest.NewLogger(t))
	drivers := make([]*mocks.WebDriver, 20)
	for i := range drivers {
		drivers[i] = mocks.NewWebDriver(t)
	}

	var wg sync.WaitGroup
	for _, wd := range drivers {
		wg.Add(1)
		go func(wd *mocks.WebDriver) {
			defer wg.Done()
			reg.Add(wd)
			_ = reg.Contains(wd)
		}(wd)
	}
	wg.Wait()
	g.Expect(reg.Len()).To(Equal(len(drivers)))

	for _, wd := range drivers {
		wg.Add(1)
		go func(wd *mocks.WebDriver) {
			defer wg.Done()
			reg.Remove(wd)
		}(wd)
	}
	wg.Wait()
	g.Expect(reg.Len()).To(BeZero())
}
