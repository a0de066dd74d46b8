package models

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformGen5   Platform = "common-gen5"
	PlatformGen4   Platform = "common-gen4"
	PlatformSwitch Platform = "nx"
)

var Platforms = []Platform{PlatformGen5, PlatformGen4, PlatformSwitch}

// ParsePlatform accepts the wire value or a short alias (gen5, gen4, switch).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PlatformGen5), "gen5":
		return PlatformGen5, nil
	case string(PlatformGen4), "gen4":
		return PlatformGen4, nil
	case string(PlatformSwitch), "switch":
		return PlatformSwitch, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

type MatchType string

const (
	MatchTypeLeague  MatchType = "leagueMatch"
	MatchTypePlayoff MatchType = "playoffMatch"
)

// ClubRef identifies a club inside one platform namespace.
type ClubRef struct {
	ClubID   string   `json:"club_id"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
}
