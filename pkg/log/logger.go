package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/zapr"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"

	"github.com/wtframework/wtf/pkg/config"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"

	testNameField = "testname"
)

var (
	SetupLogger = NewConsoleLogger

	once   sync.Once
	logger *zap.Logger
)

// settings are read from WTF_LOG_* variables and the configured test name.
type settings struct {
	level    zapcore.Level
	json     bool
	output   string
	testName string
}

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
		// crash handlers of the readiness poller report through klog
		klog.SetLogger(zapr.NewLogger(logger))
	})
	return logger
}

// NewConsoleLogger builds the process logger. Inside a test binary it defaults to warn level,
// so driver lifecycle chatter stays out of go test output unless WTF_LOG_LEVEL asks for it.
func NewConsoleLogger() *zap.Logger {
	s := readSettings()

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(s.level)
	if s.level >= zap.InfoLevel {
		zc.DisableStacktrace = true
		zc.DisableCaller = true
	}
	// stdout belongs to the tests
	zc.OutputPaths = []string{"stderr"}
	if s.output != "" {
		zc.OutputPaths = []string{s.output}
	}
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var opts []zap.Option
	if s.json {
		zc.Encoding = encodingJSON
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		zc.EncoderConfig.TimeKey = "@timestamp"
		zc.EncoderConfig.MessageKey = "message"
	} else {
		zc.Encoding = encodingConsole
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		if s.output == "" {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			if runtime.GOOS == "windows" {
				opts = append(opts, zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
					return zapcore.NewCore(
						zapcore.NewConsoleEncoder(zc.EncoderConfig),
						zapcore.AddSync(colorable.NewColorableStderr()),
						s.level,
					)
				}))
			}
		}
	}
	if s.testName != "" {
		opts = append(opts, zap.Fields(zap.String(testNameField, s.testName)))
	}

	z, err := zc.Build(opts...)
	if err != nil {
		panic(err)
	}
	return z
}

func readSettings() settings {
	def := zap.InfoLevel
	if testing.Testing() {
		def = zap.WarnLevel
	}
	return settings{
		level:    config.ZapLogLevel(env("LOG_LEVEL"), def),
		json:     strings.EqualFold(env("LOG_FORMAT"), encodingJSON),
		output:   env("LOG_OUTPUT"),
		testName: testName(),
	}
}

func testName() string {
	if name := env(config.TestNameKey); name != "" {
		return name
	}
	return os.Getenv(config.TestNameKey)
}

func env(key string) string {
	return os.Getenv(fmt.Sprintf("%s_%s", config.ConfigPrefix, key))
}
