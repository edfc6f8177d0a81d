package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path"
	"testing"

	. "github.com/onsi/gomega"
)

func TestGetLogger(t *testing.T) {
	g := NewWithT(t)
	l1 := GetLogger()
	g.Expect(l1).ToNot(BeNil())

	l2 := GetLogger()
	g.Expect(l2).To(BeIdenticalTo(l1))
}

func TestNewConsoleLogger_JSON(t *testing.T) {
	g := NewWithT(t)
	out := path.Join(t.TempDir(), "out.log")
	t.Setenv("WTF_LOG_OUTPUT", out)
	t.Setenv("WTF_LOG_FORMAT", "jSoN")
	t.Setenv("WTF_LOG_LEVEL", "info")
	t.Setenv("WTF_TESTNAME", "")
	t.Setenv("TESTNAME", "checkout")

	l := NewConsoleLogger()
	l.Debug("debug ignored")
	l.Info("test")
	_ = l.Sync()

	got, err := os.ReadFile(out)
	g.Expect(err).ToNot(HaveOccurred())

	var val map[string]interface{}
	err = json.NewDecoder(bytes.NewBuffer(got)).Decode(&val)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(val["message"]).To(Equal("test"))
	g.Expect(val).To(HaveKey("@timestamp"))
	g.Expect(val).To(HaveKeyWithValue("testname", "checkout"))
}

func TestNewConsoleLogger_Text(t *testing.T) {
	g := NewWithT(t)
	out := path.Join(t.TempDir(), "out.log")
	t.Setenv("WTF_LOG_OUTPUT", out)
	t.Setenv("WTF_LOG_FORMAT", "")
	t.Setenv("WTF_LOG_LEVEL", "info")
	t.Setenv("WTF_TESTNAME", "")
	t.Setenv("TESTNAME", "")

	l := NewConsoleLogger()
	l.Debug("debug ignored")
	l.Info("test")
	_ = l.Sync()

	got, err := os.ReadFile(out)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(string(got)).To(HaveSuffix("test\n"))
	g.Expect(string(got)).ToNot(ContainSubstring("debug ignored"))
}

func TestNewConsoleLogger_Debug(t *testing.T) {
	g := NewWithT(t)
	out := path.Join(t.TempDir(), "out.log")
	t.Setenv("WTF_LOG_OUTPUT", out)
	t.Setenv("WTF_LOG_FORMAT", "")
	t.Setenv("WTF_LOG_LEVEL", "Debug")

	l := NewConsoleLogger()
	l.Debug("test debug")
	_ = l.Sync()

	got, err := os.ReadFile(out)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(string(got)).To(ContainSubstring("test debug"))
}

func TestNewConsoleLogger_TestRunDefaults(t *testing.T) {
	g := NewWithT(t)
	out := path.Join(t.TempDir(), "out.log")
	t.Setenv("WTF_LOG_OUTPUT", out)
	t.Setenv("WTF_LOG_FORMAT", "json")
	t.Setenv("WTF_LOG_LEVEL", "")
	t.Setenv("WTF_TESTNAME", "login")
	t.Setenv("TESTNAME", "ignored")

	l := NewConsoleLogger()
	l.Info("info ignored")
	l.Warn("test warn")
	_ = l.Sync()

	got, err := os.ReadFile(out)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(got)).ToNot(ContainSubstring("info ignored"))

	var val map[string]interface{}
	err = json.NewDecoder(bytes.NewBuffer(got)).Decode(&val)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(val["message"]).To(Equal("test warn"))
	g.Expect(val).To(HaveKeyWithValue("testname", "login"))
}
