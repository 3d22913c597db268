package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thai-tu/omarchyrice/remote"
)

var testIcons = icons{Playing: "\U000f040a", Paused: "\U000f03e4"}

func TestBuildPayload(t *testing.T) {
	testCases := []struct {
		name      string
		player    string
		np        remote.NowPlaying
		wantText  string
		wantClass string
		hidden    bool
	}{
		{
			name:      "playing with artist and title",
			player:    "vlc",
			np:        remote.NowPlaying{Status: remote.StatePlaying, Artist: "Low", Title: "Monkey", Fields: 4},
			wantText:  testIcons.Playing + "  Monkey - Low",
			wantClass: "custom-vlc playing",
		},
		{
			name:      "title only",
			player:    "mpv",
			np:        remote.NowPlaying{Status: remote.StatePlaying, Title: "Monkey", Fields: 3},
			wantText:  testIcons.Playing + "  Monkey",
			wantClass: "custom-mpv playing",
		},
		{
			name:      "artist only",
			player:    "mpv",
			np:        remote.NowPlaying{Status: remote.StatePaused, Artist: "Low", Fields: 2},
			wantText:  testIcons.Paused + "  Low",
			wantClass: "custom-mpv paused",
		},
		{
			name:      "no tags shows bare icon",
			player:    "mpv",
			np:        remote.NowPlaying{Status: remote.StatePlaying, Fields: 1},
			wantText:  testIcons.Playing,
			wantClass: "custom-mpv playing",
		},
		{
			name:      "stopped displays as paused",
			player:    "vlc",
			np:        remote.NowPlaying{Status: remote.StateStopped, Artist: "Low", Title: "Monkey", Fields: 4},
			wantText:  testIcons.Paused + "  Monkey - Low",
			wantClass: "custom-vlc paused",
		},
		{
			name:   "unknown status hides",
			player: "vlc",
			np:     remote.NowPlaying{Status: "Buffering", Fields: 1},
			hidden: true,
		},
		{
			name:   "empty record hides",
			player: "vlc",
			np:     remote.NowPlaying{},
			hidden: true,
		},
		{
			name:   "no player hides",
			player: "",
			np:     remote.NowPlaying{Status: remote.StatePlaying},
			hidden: true,
		},
		{
			name:      "instance-qualified identity slug",
			player:    "spotify.instance123",
			np:        remote.NowPlaying{Status: remote.StatePlaying, Title: "Song", Fields: 3},
			wantText:  testIcons.Playing + "  Song",
			wantClass: "custom-spotify.instance123 playing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := buildPayload(tc.player, tc.np, testIcons)
			if tc.hidden {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.wantText, got.Text)
			assert.Equal(t, tc.wantClass, got.Class)
			assert.Equal(t, tc.player, got.Alt)
		})
	}
}

func TestBuildPayloadSpotifyAds(t *testing.T) {
	t.Run("ad track id replaces the track text", func(t *testing.T) {
		np := remote.NowPlaying{
			Status:  remote.StatePlaying,
			Artist:  "Some Artist",
			Title:   "Some Title",
			TrackID: "spotify:ad:000000012345",
			Fields:  4,
		}
		got, ok := buildPayload("spotify", np, testIcons)
		require.True(t, ok)
		assert.Equal(t, testIcons.Playing+"  Advertisement", got.Text)
	})

	t.Run("ad marker matches case-insensitively", func(t *testing.T) {
		np := remote.NowPlaying{
			Status:  remote.StatePlaying,
			TrackID: "spotify:AD:000000012345",
			Fields:  4,
		}
		got, ok := buildPayload("spotify.instance99", np, testIcons)
		require.True(t, ok)
		assert.Equal(t, testIcons.Playing+"  Advertisement", got.Text)
	})

	t.Run("other players are not ad-checked", func(t *testing.T) {
		np := remote.NowPlaying{
			Status:  remote.StatePlaying,
			Title:   "radio:ad:jingle",
			TrackID: "radio:ad:jingle",
			Fields:  4,
		}
		got, ok := buildPayload("vlc", np, testIcons)
		require.True(t, ok)
		assert.Equal(t, testIcons.Playing+"  radio:ad:jingle", got.Text)
	})
}

func TestSlugifyClass(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"spotify", "spotify"},
		{"Spotify", "spotify"},
		{"spotify.instance123", "spotify.instance123"},
		{"my player!", "my_player"},
		{"__weird__", "weird"},
		{"...", "player"},
		{"", "player"},
		{"火狐", "player"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, slugifyClass(tc.in), "slugifyClass(%q)", tc.in)
	}
}

func TestHiddenPayloadShape(t *testing.T) {
	raw, err := json.Marshal(hiddenPayload())
	require.NoError(t, err)
	assert.Equal(t, `{"text":"","alt":"","class":"hidden"}`, string(raw))
}
