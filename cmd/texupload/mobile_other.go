//go:build !android

package main

import (
	"github.com/MobRulesGames/vrtex/base"
	"github.com/MobRulesGames/vrtex/logging"
)

func runMobile(config base.Config, names []string) int {
	logging.Error("the mobile backend needs an android build", "assets", names)
	return 1
}
