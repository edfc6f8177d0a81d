package main

import (
	"github.com/wtframework/wtf/pkg/app"
)

const appName = "wtf"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
