// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"strings"

	"github.com/thai-tu/omarchyrice/remote"
)

// Payload is the JSON object waybar reads from stdout, one line per tick.
type Payload struct {
	Text  string `json:"text"`
	Alt   string `json:"alt"`
	Class string `json:"class"`
}

// hiddenPayload is emitted whenever there is nothing to show. Waybar must
// always get valid JSON, so errors collapse to this instead of a non-zero
// exit or silence.
func hiddenPayload() Payload {
	return Payload{Class: "hidden"}
}

// icons holds the status glyphs; overridable through the config file.
type icons struct {
	Playing string
	Paused  string
}

// buildPayload renders the display payload for the chosen player. ok is
// false when the module should hide instead.
func buildPayload(player string, np remote.NowPlaying, ic icons) (Payload, bool) {
	if player == "" {
		return Payload{}, false
	}

	status := np.Status
	if status == remote.StateStopped {
		status = remote.StatePaused
	}
	if status != remote.StatePlaying && status != remote.StatePaused {
		return Payload{}, false
	}

	trackInfo := ""
	switch {
	case isSpotifyAd(player, np.TrackID):
		trackInfo = "Advertisement"
	case np.Artist != "" && np.Title != "":
		trackInfo = np.Title + " - " + np.Artist
	case np.Title != "":
		trackInfo = np.Title
	case np.Artist != "":
		trackInfo = np.Artist
	}

	icon := ic.Paused
	if status == remote.StatePlaying {
		icon = ic.Playing
	}
	if icon == "" && trackInfo == "" {
		return Payload{}, false
	}

	text := icon
	if trackInfo != "" {
		if icon != "" {
			text = icon + "  " + trackInfo
		} else {
			text = trackInfo
		}
	}

	return Payload{
		Text:  text,
		Alt:   player,
		Class: "custom-" + slugifyClass(player) + " " + strings.ToLower(string(status)),
	}, true
}

// Spotify reports advertisements as tracks whose id contains ":ad:"; those
// get a fixed label no matter what the artist/title tags claim.
func isSpotifyAd(player, trackID string) bool {
	return strings.ToLower(remote.NormalizeIdentity(player)) == "spotify" &&
		strings.Contains(strings.ToLower(trackID), ":ad:")
}

// slugifyClass makes a CSS-safe class token from a player identity.
// Alphanumerics and dots survive, everything else becomes an underscore.
func slugifyClass(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	token := strings.Trim(b.String(), "_.")
	if token == "" {
		return "player"
	}
	return token
}
