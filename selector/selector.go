// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package selector

import (
	"errors"

	"github.com/thai-tu/omarchyrice/logger"
	"github.com/thai-tu/omarchyrice/remote"
)

// Selector picks the one player the status bar should show. It remembers its
// last choice through a Store so the display does not flicker between
// players across refresh ticks.
type Selector struct {
	source remote.PlayerSource
	store  Store
	logger logger.LoggerInterface
}

func New(source remote.PlayerSource, store Store, l logger.LoggerInterface) *Selector {
	return &Selector{source: source, store: store, logger: l}
}

// Choose applies filters and the sticky heuristic and returns the chosen
// player identity, or "" when nothing qualifies:
//
//   - Prefer a currently Playing player; if the prior choice is itself
//     Playing, keep it.
//   - If nobody is Playing, keep the prior choice while it is still
//     Playing or Paused; otherwise prefer a Paused player; otherwise fall
//     back to the first candidate.
//
// The chosen identity is persisted best-effort. Forced and excluded names
// match by normalized identity, so spotify also covers spotify.instance123.
func (s *Selector) Choose(forced string, excluded []string) string {
	players := s.source.ListPlayers()
	if len(players) == 0 {
		s.logger.Print("no players running")
		return ""
	}
	s.logger.Printf("players (raw): %v", players)

	candidates := s.filter(players, forced, excluded)
	if len(candidates) == 0 {
		s.logger.Print("no players after filtering")
		return ""
	}

	prior := s.loadPrior(candidates)
	s.logger.Printf("prior choice (valid): %q", prior)

	// One status query per candidate, fetched up front.
	statuses := make(map[string]remote.PlayerState, len(candidates))
	for _, name := range candidates {
		statuses[name] = s.source.Status(name)
	}
	s.logger.Printf("statuses: %v", statuses)

	chosen := pick(candidates, statuses, prior)

	if chosen != "" {
		if err := s.store.Save(chosen); err != nil {
			// Losing stickiness for one tick is not worth failing over.
			s.logger.PrintError("save state", err)
		}
	}
	s.logger.Printf("chosen: %q", chosen)
	return chosen
}

func (s *Selector) filter(players []string, forced string, excluded []string) []string {
	var out []string
	if forced != "" {
		want := remote.NormalizeIdentity(forced)
		for _, name := range players {
			if remote.NormalizeIdentity(name) == want {
				out = append(out, name)
			}
		}
		return out
	}

	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		if name != "" {
			skip[name] = true
		}
	}
	for _, name := range players {
		if !skip[remote.NormalizeIdentity(name)] {
			out = append(out, name)
		}
	}
	return out
}

// loadPrior returns the persisted choice re-matched against the current
// candidates, or "" when there is none or it is gone.
func (s *Selector) loadPrior(candidates []string) string {
	prior, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoState) {
			s.logger.PrintError("load state", err)
		}
		return ""
	}
	want := remote.NormalizeIdentity(prior)
	for _, name := range candidates {
		if remote.NormalizeIdentity(name) == want {
			return name
		}
	}
	return ""
}

func pick(candidates []string, statuses map[string]remote.PlayerState, prior string) string {
	var firstPlaying, firstPaused string
	for _, name := range candidates {
		switch statuses[name] {
		case remote.StatePlaying:
			if firstPlaying == "" {
				firstPlaying = name
			}
		case remote.StatePaused:
			if firstPaused == "" {
				firstPaused = name
			}
		}
	}

	if firstPlaying != "" {
		if prior != "" && statuses[prior] == remote.StatePlaying {
			return prior
		}
		return firstPlaying
	}

	if prior != "" {
		if st := statuses[prior]; st == remote.StatePlaying || st == remote.StatePaused {
			return prior
		}
	}
	if firstPaused != "" {
		return firstPaused
	}
	return candidates[0]
}
