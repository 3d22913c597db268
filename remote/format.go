// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import "strings"

// MetadataFormat is the playerctl format string that batches everything we
// need into one invocation. The ||| delimiter is unlikely to appear in tags.
const MetadataFormat = "{{status}}|||{{artist}}|||{{title}}|||{{mpris:trackid}}"

// NowPlaying is one parsed metadata record. Fields reports how many of the
// four delimited fields were present in the raw line, so callers can tell an
// empty tag from a truncated record.
type NowPlaying struct {
	Status  PlayerState
	Artist  string
	Title   string
	TrackID string
	Fields  int
}

// ParseNowPlaying parses a single line produced by MetadataFormat. An empty
// line yields a zero record with Fields == 0.
func ParseNowPlaying(line string) NowPlaying {
	var np NowPlaying
	line = strings.TrimSpace(line)
	if line == "" {
		return np
	}

	parts := strings.Split(line, "|||")
	np.Fields = len(parts)
	if np.Fields > 4 {
		np.Fields = 4
	}

	if len(parts) >= 1 {
		np.Status = PlayerState(strings.TrimSpace(parts[0]))
	}
	if len(parts) >= 2 {
		np.Artist = strings.TrimSpace(parts[1])
	}
	if len(parts) >= 3 {
		np.Title = strings.TrimSpace(parts[2])
	}
	if len(parts) >= 4 {
		np.TrackID = strings.TrimSpace(parts[3])
	}
	return np
}
