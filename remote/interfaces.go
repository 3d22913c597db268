package remote

import "strings"

// PlayerState is the MPRIS playback status of a single player.
type PlayerState string

const (
	StatePlaying PlayerState = "Playing"
	StatePaused  PlayerState = "Paused"
	StateStopped PlayerState = "Stopped"
	StateUnknown PlayerState = ""
)

// PlayerSource enumerates running media players and reports what they are
// doing. Implementations never return errors: a backend that cannot answer
// reports an empty list, StateUnknown, or an empty record, and the module
// hides instead of failing.
type PlayerSource interface {
	// ListPlayers returns the identities of all running players, in the
	// backend's enumeration order.
	ListPlayers() []string

	// Status returns the playback status of one player.
	Status(player string) PlayerState

	// NowPlaying fetches status, artist, title and track id for one player
	// in a single query.
	NowPlaying(player string) NowPlaying
}

// NormalizeIdentity strips the instance qualifier from a player identity,
// e.g. spotify.instance123 -> spotify, so that the same application matches
// across restarts.
func NormalizeIdentity(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}
