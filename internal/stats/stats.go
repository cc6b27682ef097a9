// Package stats derives the dashboard's canned analytics from a fetched
// claim list. Everything here is a pure function over data the query
// layer already holds; nothing talks to the network.
package stats

import (
	"sort"
	"strings"

	"njia-admin/internal/model"
)

// LocationCount is a claim count for one location.
type LocationCount struct {
	Location string
	Count    int
}

// ClaimStatistics summarizes a set of claims.
type ClaimStatistics struct {
	Total           int
	Pending         int
	Verified        int
	Rejected        int
	Resolved        int
	BySeverity      map[model.SeverityLevel]int
	ByDetectionType map[model.DetectionType]int
	ByLocation      []LocationCount
	RecentClaims    []model.Claim
}

// Compute builds statistics over claims, keeping the recentN newest
// claims (by creation time) in RecentClaims.
func Compute(claims []model.Claim, recentN int) *ClaimStatistics {
	s := &ClaimStatistics{
		Total:           len(claims),
		BySeverity:      make(map[model.SeverityLevel]int),
		ByDetectionType: make(map[model.DetectionType]int),
	}

	locations := make(map[string]int)
	for _, c := range claims {
		switch c.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusVerified:
			s.Verified++
		case model.StatusRejected:
			s.Rejected++
		case model.StatusResolved:
			s.Resolved++
		}
		s.BySeverity[c.Severity]++
		s.ByDetectionType[c.DetectionType]++
		locations[c.Location]++
	}

	for loc, n := range locations {
		s.ByLocation = append(s.ByLocation, LocationCount{Location: loc, Count: n})
	}
	// Busiest locations first; ties by name for stable output.
	sort.Slice(s.ByLocation, func(i, j int) bool {
		if s.ByLocation[i].Count != s.ByLocation[j].Count {
			return s.ByLocation[i].Count > s.ByLocation[j].Count
		}
		return s.ByLocation[i].Location < s.ByLocation[j].Location
	})

	recent := append([]model.Claim(nil), claims...)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if recentN > 0 && len(recent) > recentN {
		recent = recent[:recentN]
	}
	s.RecentClaims = recent

	return s
}

// Filter selects claims matching the dashboard's list filters. Empty
// fields match everything; Search matches location, description, and the
// owner's email case-insensitively.
type Filter struct {
	Status   model.ClaimStatus
	Severity model.SeverityLevel
	Search   string
}

// Apply returns the claims matching f, preserving order.
func (f Filter) Apply(claims []model.Claim) []model.Claim {
	search := strings.ToLower(f.Search)
	var out []model.Claim
	for _, c := range claims {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Severity != "" && c.Severity != f.Severity {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Location), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) &&
			!strings.Contains(strings.ToLower(c.User.Email), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Paginate slices claims into the 1-based page of the given size and
// returns the slice plus the total page count. An out-of-range page
// yields an empty slice.
func Paginate(claims []model.Claim, page, pageSize int) ([]model.Claim, int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (len(claims) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(claims) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(claims) {
		end = len(claims)
	}
	return claims[start:end], totalPages
}
