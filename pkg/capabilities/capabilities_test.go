package capabilities

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/tebeka/selenium"

	"github.com/wtframework/wtf/pkg/models"
)

func TestTemplate(t *testing.T) {
	for _, b := range models.BrowserTypes() {
		t.Run(string(b), func(t *testing.T) {
			g := NewWithT(t)

			got, ok := Template(b)
			g.Expect(ok).To(BeTrue())
			g.Expect(got).To(HaveKey(BrowserNameCapability))
			g.Expect(got).To(HaveKey("platform"))
			g.Expect(got).ToNot(HaveKey(NameCapability))
		})
	}

	_, ok := Template("MOSAIC")
	NewWithT(t).Expect(ok).To(BeFalse())
}

func TestTemplate_Fresh(t *testing.T) {
	g := NewWithT(t)

	c1, _ := Template(models.Chrome)
	c1["browserName"] = "changed"
	c1["extra"] = "1"

	c2, _ := Template(models.Chrome)
	g.Expect(c2["browserName"]).To(Equal("chrome"))
	g.Expect(c2).ToNot(HaveKey("extra"))
}

func TestBuild(t *testing.T) {
	g := NewWithT(t)

	extra := map[string]interface{}{
		"platform":       "LINUX",
		"idleTimeout":    90,
		"recordVideo":    true,
		"browserVersion": "120",
	}

	got, err := Build(models.Firefox, extra, "", "")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(selenium.Capabilities{
		"browserName":       "firefox",
		"version":           "",
		"platform":          "LINUX",
		"javascriptEnabled": true,
		"marionette":        true,
		"idleTimeout":       "90",
		"recordVideo":       "true",
		"browserVersion":    "120",
	}))
}

func TestBuild_ContainsTemplateAndExtraKeys(t *testing.T) {
	extra := map[string]interface{}{"a": 1, "b": "two", "c": 1.5, "d": false}
	for _, b := range models.BrowserTypes() {
		t.Run(string(b), func(t *testing.T) {
			g := NewWithT(t)

			tmpl, _ := Template(b)
			got, err := Build(b, extra, "", "")
			g.Expect(err).ToNot(HaveOccurred())
			for k := range tmpl {
				g.Expect(got).To(HaveKey(k))
			}
			for k := range extra {
				g.Expect(got).To(HaveKeyWithValue(k, BeAssignableToTypeOf("")))
			}
			g.Expect(got).To(HaveKeyWithValue("c", "1.5"))
			g.Expect(got).To(HaveKeyWithValue("d", "false"))
		})
	}
}

func TestBuild_Name(t *testing.T) {
	tests := []struct {
		name     string
		testName string
		suffix   string
		extra    map[string]interface{}
		want     interface{}
		wantKey  bool
	}{
		{name: "base and suffix", testName: "smoke", suffix: "login", want: "smoke-login", wantKey: true},
		{name: "base only", testName: "smoke", want: "smoke", wantKey: true},
		{name: "suffix only", suffix: "login"},
		{name: "none"},
		{name: "base overrides configured name", testName: "smoke", extra: map[string]interface{}{"name": "cfg"},
			want: "smoke", wantKey: true},
		{name: "configured name kept", extra: map[string]interface{}{"name": "cfg"}, suffix: "login",
			want: "cfg", wantKey: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			got, err := Build(models.Chrome, tt.extra, tt.testName, tt.suffix)
			g.Expect(err).ToNot(HaveOccurred())
			if tt.wantKey {
				g.Expect(got).To(HaveKeyWithValue(NameCapability, tt.want))
			} else {
				g.Expect(got).ToNot(HaveKey(NameCapability))
			}
		})
	}
}

func TestBuild_Unsupported(t *testing.T) {
	g := NewWithT(t)

	_, err := Build("MOSAIC", nil, "", "")
	g.Expect(models.IsUnsupportedBrowserType(err)).To(BeTrue())
}

func TestDescribe(t *testing.T) {
	g := NewWithT(t)

	caps, err := Build(models.HTMLUnitWithJS, map[string]interface{}{"platformName": "linux"}, "smoke", "x")
	g.Expect(err).ToNot(HaveOccurred())

	got, err := Describe(caps)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.GetName()).To(Equal("htmlunit"))
	g.Expect(got.GetVersion()).To(Equal("firefox"))
	g.Expect(got.GetPlatform()).To(Equal("linux"))
	g.Expect(got.GetTestName()).To(Equal("smoke-x"))
}
