package app

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/wtframework/wtf/pkg/log"
)

var (
	InitLog *zap.SugaredLogger

	InitLogger func() *zap.Logger = InitLoggerFunc
)

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	InitLog.Debugf("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	if err := NewRootCommand(appName, appVersion, l).Execute(); err != nil {
		os.Exit(1)
	}
}
