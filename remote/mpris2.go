// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/thai-tu/omarchyrice/logger"
)

const (
	mprisBusPrefix   = "org.mpris.MediaPlayer2."
	mprisObjectPath  = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

// MprisSource talks MPRIS2 over the session bus directly, without shelling
// out to playerctl. Player identities are the bus names with the
// org.mpris.MediaPlayer2. prefix stripped, which matches what playerctl
// reports for the same players.
type MprisSource struct {
	conn   *dbus.Conn
	logger logger.LoggerInterface
}

func ConnectMpris(l logger.LoggerInterface) (*MprisSource, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &MprisSource{conn: conn, logger: l}, nil
}

func (m *MprisSource) Close() {
	if err := m.conn.Close(); err != nil {
		m.logger.PrintError("mpris Close", err)
	}
}

func (m *MprisSource) ListPlayers() []string {
	var names []string
	err := m.conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		m.logger.PrintError("mpris ListNames", err)
		return nil
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisBusPrefix) {
			players = append(players, strings.TrimPrefix(name, mprisBusPrefix))
		}
	}
	return players
}

func (m *MprisSource) Status(player string) PlayerState {
	obj := m.conn.Object(mprisBusPrefix+player, mprisObjectPath)
	v, err := obj.GetProperty(mprisPlayerIface + ".PlaybackStatus")
	if err != nil {
		m.logger.Printf("mpris status %s: %v", player, err)
		return StateUnknown
	}
	status, _ := v.Value().(string)
	return PlayerState(status)
}

func (m *MprisSource) NowPlaying(player string) NowPlaying {
	var np NowPlaying

	np.Status = m.Status(player)
	if np.Status == StateUnknown {
		return np
	}
	np.Fields = 1

	obj := m.conn.Object(mprisBusPrefix+player, mprisObjectPath)
	v, err := obj.GetProperty(mprisPlayerIface + ".Metadata")
	if err != nil {
		m.logger.Printf("mpris metadata %s: %v", player, err)
		return np
	}
	metadata, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return np
	}
	np.Fields = 4

	np.Artist = variantArtist(metadata["xesam:artist"])
	np.Title, _ = metadata["xesam:title"].Value().(string)
	np.TrackID = variantTrackID(metadata["mpris:trackid"])
	return np
}

func variantArtist(v dbus.Variant) string {
	switch val := v.Value().(type) {
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	case string:
		return val
	}
	return ""
}

// variantTrackID handles both spellings seen in the wild: a proper D-Bus
// object path and a plain string.
func variantTrackID(v dbus.Variant) string {
	switch val := v.Value().(type) {
	case dbus.ObjectPath:
		return string(val)
	case string:
		return val
	}
	return ""
}
