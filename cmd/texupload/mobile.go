//go:build android

package main

import (
	"github.com/MobRulesGames/vrtex/base"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/logging"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/gl"
)

// On the mobile backend 'names' are app assets. Uploads happen once, the
// first time the app becomes visible.
func runMobile(config base.Config, names []string) int {
	session := newAssetSession(names, config.TextureOptions())
	app.Main(func(a app.App) {
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				if e.Crosses(lifecycle.StageVisible) != lifecycle.CrossOn {
					continue
				}
				glctx, ok := e.DrawContext.(gl.Context)
				if !ok {
					logging.Error("lifecycle event without a gl.Context")
					continue
				}
				session.visible(&gles.Mobile{Ctx: glctx})
				a.Send(paint.Event{})
			case paint.Event:
				if e.External {
					continue
				}
				a.Publish()
			}
		}
	})
	return session.exitCode()
}
