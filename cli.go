//go:build cli
// +build cli

package main

import (
	_ "remiks.GO/cron/jobs"
	_ "remiks.GO/custom"

	"remiks.GO/cmd"
	"remiks.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
