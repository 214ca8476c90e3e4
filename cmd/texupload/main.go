// Command texupload uploads image files as GL textures and reports what the
// driver made of them. It exists to smoke-test a device backend on real
// hardware.
//
//	texupload [-config path.json] [-write-config out.json] image.png [image.webp ...]
//
// Image paths are logged relative to the config file's directory, or to the
// working directory when there is no config.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MobRulesGames/vrtex/base"
	"github.com/MobRulesGames/vrtex/logging"
	"github.com/MobRulesGames/vrtex/texture"
)

func main() {
	os.Exit(Main(os.Args[1:], os.Stderr))
}

func Main(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("texupload", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "json config file; defaults apply when omitted")
	writeConfig := flags.String("write-config", "", "write the effective config to this file")
	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	paths := flags.Args()
	if len(paths) == 0 && *writeConfig == "" {
		fmt.Fprintln(stderr, "usage: texupload [-config path.json] [-write-config out.json] image...")
		return 2
	}

	config := base.DefaultConfig()
	if *configPath != "" {
		config, err = base.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	lvl, err := config.SlogLevel()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logging.SetLogLevel(lvl)

	if *writeConfig != "" {
		err = base.SaveJson(*writeConfig, config)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		logging.Info("wrote config", "path", *writeConfig)
		if len(paths) == 0 {
			return 0
		}
	}

	switch config.Backend {
	case base.BackendLegacy:
		return runLegacy(config, logRoot(*configPath), paths)
	case base.BackendMobile:
		return runMobile(config, paths)
	}
	fmt.Fprintf(stderr, "unknown backend %q\n", config.Backend)
	return 1
}

// The directory image paths are reported against.
func logRoot(configPath string) string {
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err == nil {
			return filepath.Dir(abs)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

type uploadFunc func(path string) (*texture.BaseTexture, error)

// Uploads every path, logs the outcome of each and releases whatever was
// made. Paths are logged relative to 'root' where possible. Returns the
// number of failures.
func uploadAll(root string, paths []string, upload uploadFunc, release func(*texture.BaseTexture)) int {
	failures := 0
	for _, path := range paths {
		name := displayPath(root, path)
		tex, err := upload(path)
		if err != nil {
			logging.Error("upload failed", "path", name, "err", err)
			failures++
			continue
		}
		logging.Info("uploaded", "path", name, "handle", tex.ID(), "width", tex.Width(), "height", tex.Height())
		release(tex)
	}
	logging.Info("done", "uploaded", len(paths)-failures, "failed", failures)
	return failures
}

func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel := base.TryRelative(root, abs)
	if rel == abs {
		return path
	}
	return rel
}

func exitCode(failures int) int {
	if failures > 0 {
		return 1
	}
	return 0
}
