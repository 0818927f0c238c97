// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"sort"
	"strings"
)

// Interaction is one item a user engaged with. Profiles are derived from
// interaction history per request; nothing is persisted server-side.
type Interaction struct {
	ItemID   string   `json:"item_id"`
	Platform string   `json:"platform"`
	Keywords []string `json:"keywords"`
	Hashtags []string `json:"hashtags"`
}

// Profile captures a user's interests and derived preferences for one
// recommendation request.
type Profile struct {
	// Interests are the stated interests, lowercased.
	Interests []string

	// PreferredPlatforms restricts content-based results when non-empty.
	// Derived from interaction history, sorted for determinism.
	PreferredPlatforms []string

	// Keywords and Hashtags are lowercased term sets unioned from the
	// interaction history.
	Keywords map[string]struct{}
	Hashtags map[string]struct{}
}

// CreateProfile builds a request-scoped profile from stated interests
// and optional interaction history. Both inputs may be empty.
func CreateProfile(interests []string, interactions []Interaction) *Profile {
	p := &Profile{
		Interests: make([]string, 0, len(interests)),
		Keywords:  make(map[string]struct{}),
		Hashtags:  make(map[string]struct{}),
	}

	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if interest != "" {
			p.Interests = append(p.Interests, interest)
		}
	}

	platforms := make(map[string]struct{})
	for i := range interactions {
		inter := &interactions[i]
		if inter.Platform != "" {
			platforms[inter.Platform] = struct{}{}
		}
		for _, k := range inter.Keywords {
			if k != "" {
				p.Keywords[strings.ToLower(k)] = struct{}{}
			}
		}
		for _, h := range inter.Hashtags {
			if h != "" {
				p.Hashtags[strings.ToLower(h)] = struct{}{}
			}
		}
	}

	p.PreferredPlatforms = make([]string, 0, len(platforms))
	for platform := range platforms {
		p.PreferredPlatforms = append(p.PreferredPlatforms, platform)
	}
	sort.Strings(p.PreferredPlatforms)

	return p
}

// allowsPlatform reports whether the profile's platform filter admits
// the given platform. An empty filter admits everything.
func (p *Profile) allowsPlatform(platform string) bool {
	if len(p.PreferredPlatforms) == 0 {
		return true
	}
	for _, allowed := range p.PreferredPlatforms {
		if allowed == platform {
			return true
		}
	}
	return false
}

// queryText joins interests and derived terms into the content query.
func (p *Profile) queryText() string {
	parts := make([]string, 0, len(p.Interests)+len(p.Keywords)+len(p.Hashtags))
	parts = append(parts, p.Interests...)

	// Map iteration order does not matter for scoring: the TF-IDF query
	// vector is order-independent. Sorted anyway so logs are stable.
	keywords := make([]string, 0, len(p.Keywords))
	for k := range p.Keywords {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	parts = append(parts, keywords...)

	hashtags := make([]string, 0, len(p.Hashtags))
	for h := range p.Hashtags {
		hashtags = append(hashtags, h)
	}
	sort.Strings(hashtags)
	parts = append(parts, hashtags...)

	return strings.TrimSpace(strings.Join(parts, " "))
}
