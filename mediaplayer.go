// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thai-tu/omarchyrice/logger"
	"github.com/thai-tu/omarchyrice/remote"
	"github.com/thai-tu/omarchyrice/selector"
)

var osExit = os.Exit     // A variable to allow mocking os.Exit in tests
var stdout io.Writer = os.Stdout

const DEVELOPMENT = "development"

// Version is the program version; usually set from BuildInfo
var Version string = DEVELOPMENT

// readConfig loads the optional config file. Unlike a server, a status bar
// module must come up with no configuration at all, so every key has a
// default and a missing file is not an error.
func readConfig(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("mediaplayer")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$XDG_CONFIG_HOME/waybar")
		viper.AddConfigPath("$HOME/.config/waybar")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("icons.playing", "\U000f040a")
	viper.SetDefault("icons.paused", "\U000f03e4")
	viper.SetDefault("state.file", defaultStatePath())
	viper.SetDefault("playerctl.bin", "")
	viper.SetDefault("player.backend", "playerctl")
	viper.SetDefault("player.exclude", []string{})

	_ = viper.ReadInConfig()
}

func defaultStatePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "waybar", "mpris_state.json")
}

// newSource picks the player backend. playerctl is the default; the dbus
// backend talks MPRIS2 directly and is useful where playerctl is not
// installed.
func newSource(backend string, log *logger.Logger) remote.PlayerSource {
	if backend == "dbus" {
		src, err := remote.ConnectMpris(log)
		if err != nil {
			log.PrintError("connect session bus", err)
			return nil
		}
		return src
	}
	return remote.NewPlayerctlSource(viper.GetString("playerctl.bin"), log)
}

func newStore() selector.Store {
	path := viper.GetString("state.file")
	if path == "" {
		// Stickiness degrades to per-invocation, everything else works.
		return &selector.MemoryStore{}
	}
	return selector.NewFileStore(path)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run produces exactly one payload. Any panic inside is converted to the
// hidden payload so the calling bar never sees malformed output.
func run(forced, exclude, backend string, log *logger.Logger) (out Payload) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v", r)
			out = hiddenPayload()
		}
	}()

	excluded := splitList(exclude)
	excluded = append(excluded, viper.GetStringSlice("player.exclude")...)

	source := newSource(backend, log)
	if source == nil {
		return hiddenPayload()
	}
	if closer, ok := source.(*remote.MprisSource); ok {
		defer closer.Close()
	}

	sel := selector.New(source, newStore(), log)
	chosen := sel.Choose(forced, excluded)
	if chosen == "" {
		return hiddenPayload()
	}

	np := source.NowPlaying(chosen)
	log.Printf("info: player=%q status=%q artist=%q title=%q trackid=%q fields=%d",
		chosen, np.Status, np.Artist, np.Title, np.TrackID, np.Fields)

	payload, ok := buildPayload(chosen, np, icons{
		Playing: viper.GetString("icons.playing"),
		Paused:  viper.GetString("icons.paused"),
	})
	if !ok {
		return hiddenPayload()
	}
	return payload
}

func emit(p Payload) {
	line, err := json.Marshal(p)
	if err != nil {
		// Unreachable for a struct of strings, but the contract stands.
		line = []byte(`{"text":"","alt":"","class":"hidden"}`)
	}
	fmt.Fprintln(stdout, string(line))
}

func main() {
	forced := pflag.String("player", "", "force a specific player name")
	exclude := pflag.StringP("exclude", "x", "", "comma-separated list of players to ignore")
	debugFlag := pflag.Bool("debug", false, "print debug info to stderr")
	backend := pflag.String("backend", "", "player backend: playerctl or dbus")
	configFile := pflag.String("config", "", "use config `file`")
	version := pflag.Bool("version", false, "print the version and exit")
	pflag.Parse()

	if Version == DEVELOPMENT {
		if bi, ok := debug.ReadBuildInfo(); ok {
			Version = bi.Main.Version
		}
	}
	if *version {
		fmt.Printf("mediaplayer %s\n", Version)
		osExit(0)
	}

	log := logger.Init(*debugFlag)
	readConfig(*configFile)

	b := *backend
	if b == "" {
		b = viper.GetString("player.backend")
	}

	emit(run(*forced, *exclude, b, log))
	osExit(0)
}
