// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thai-tu/omarchyrice/logger"
)

// defaultPlayerctlBin is preferred over a PATH lookup because waybar may run
// with a stripped-down environment.
const defaultPlayerctlBin = "/usr/bin/playerctl"

// PlayerctlSource drives the playerctl command line utility. Every call
// spawns one short-lived process; any failure (binary missing, non-zero
// exit) is treated as empty output.
type PlayerctlSource struct {
	bin    string
	logger logger.LoggerInterface
}

func NewPlayerctlSource(bin string, l logger.LoggerInterface) *PlayerctlSource {
	if bin == "" {
		bin = defaultPlayerctlBin
		if _, err := os.Stat(bin); err != nil {
			bin = "playerctl"
		}
	}
	return &PlayerctlSource{bin: bin, logger: l}
}

func (p *PlayerctlSource) run(args ...string) string {
	out, err := exec.Command(p.bin, args...).Output()
	if err != nil {
		p.logger.Printf("playerctl %s: %v", strings.Join(args, " "), err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (p *PlayerctlSource) ListPlayers() []string {
	out := p.run("--list-all")
	if out == "" {
		return nil
	}
	var players []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			players = append(players, line)
		}
	}
	return players
}

func (p *PlayerctlSource) Status(player string) PlayerState {
	return PlayerState(p.run("--player", player, "status"))
}

func (p *PlayerctlSource) NowPlaying(player string) NowPlaying {
	return ParseNowPlaying(p.run("--player", player, "metadata", "--format", MetadataFormat))
}
