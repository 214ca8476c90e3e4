package main

import (
	"fmt"
	"time"

	"github.com/MobRulesGames/vrtex/base"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/logging"
	"github.com/MobRulesGames/vrtex/texture"
	"github.com/go-gl-legacy/gl"
	"github.com/runningwild/glop/gin"
	"github.com/runningwild/glop/gos"
	"github.com/runningwild/glop/render"
	"github.com/runningwild/glop/system"
)

// Uploads longer than a 72Hz frame are worth hearing about on a headset.
const slowUploadThreshold = time.Second / 72

func watchForSlowJobs() *render.JobTimingListener {
	return &render.JobTimingListener{
		OnNotify: func(info *render.JobTimingInfo, attribution string) {
			logging.Warn("slow render job", "runtime", info.RunTime, "queuetime", info.QueueTime, "location", attribution)
		},
		Threshold: slowUploadThreshold,
	}
}

func runLegacy(config base.Config, root string, paths []string) int {
	sys := system.Make(gos.NewSystemInterface(), gin.In())
	sys.Startup()

	queue := render.MakeQueueWithTiming(func(render.RenderQueueState) {
		sys.CreateWindow(10, 10, config.Window.Dx, config.Window.Dy)
		err := gl.Init()
		// 0 is GLEW_OK
		if err != 0 {
			panic(fmt.Errorf("gl.Init failed: %v", err))
		}
	}, watchForSlowJobs())
	queue.AddErrorCallback(func(_ render.RenderQueueInterface, e error) {
		logging.Error("render-thread error", "err", e)
	})
	queue.StartProcessing()

	up := texture.MakeUploader(texture.RenderThread(queue), gles.Legacy{}, config.TextureOptions())
	return exitCode(uploadAll(root, paths, up.FromFile, up.Release))
}
