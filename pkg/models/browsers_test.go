package models

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseBrowserType(t *testing.T) {
	tests := []struct {
		in     string
		want   BrowserType
		wantOk bool
	}{
		{in: "FIREFOX", want: Firefox, wantOk: true},
		{in: "chrome", want: Chrome, wantOk: true},
		{in: "internet-explorer", want: InternetExplorer, wantOk: true},
		{in: " htmlunit-with-js ", want: HTMLUnitWithJS, wantOk: true},
		{in: "iPhone", want: IPhone, wantOk: true},
		{in: "mosaic"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g := NewWithT(t)
			got, ok := ParseBrowserType(tt.in)
			g.Expect(ok).To(Equal(tt.wantOk))
			g.Expect(got).To(Equal(tt.want))
		})
	}
}

func TestParseDriverType(t *testing.T) {
	g := NewWithT(t)

	got, ok := ParseDriverType("remote")
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(Equal(RemoteDriver))

	got, ok = ParseDriverType(" Local")
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(Equal(LocalDriver))

	_, ok = ParseDriverType("grid")
	g.Expect(ok).To(BeFalse())
}

func TestBrowserTypes(t *testing.T) {
	g := NewWithT(t)

	got := BrowserTypes()
	g.Expect(got).To(HaveLen(11))
	got[0] = "changed"
	g.Expect(BrowserTypes()[0]).To(Equal(Chrome))
}

func TestBrowserType_Maximizable(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Opera.Maximizable()).To(BeFalse())
	g.Expect(InternetExplorer.Maximizable()).To(BeFalse())
	g.Expect(Firefox.Maximizable()).To(BeTrue())
	g.Expect(Chrome.Maximizable()).To(BeTrue())
}
