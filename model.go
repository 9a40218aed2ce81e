package main

import (
	"time"
)

// Item is a single watchlist entry: a movie or a TV show with status,
// rating, and episode-progress metadata.
type Item struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Rating         *int      `json:"rating,omitempty"`
	CurrentEpisode *int      `json:"current_episode,omitempty"`
	TotalEpisodes  *int      `json:"total_episodes,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	DateAdded      time.Time `json:"date_added"`
}

// Item type values.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// Item status values.
const (
	StatusPlanned   = "Planned"
	StatusWatching  = "Watching"
	StatusCompleted = "Completed"
	StatusDropped   = "Dropped"
)

// Rating bounds, inclusive.
const (
	ratingMin = 1
	ratingMax = 10
)

// itemFields is the fixed allow-list of keys accepted in write payloads.
// date_added is recognized but server-owned; the normalizer drops it.
var itemFields = map[string]struct{}{
	"title":           {},
	"type":            {},
	"status":          {},
	"rating":          {},
	"current_episode": {},
	"total_episodes":  {},
	"notes":           {},
	"date_added":      {},
}

var validTypes = map[string]struct{}{
	TypeMovie:  {},
	TypeTVShow: {},
}

var validStatuses = map[string]struct{}{
	StatusPlanned:   {},
	StatusWatching:  {},
	StatusCompleted: {},
	StatusDropped:   {},
}

// fieldPatch holds the normalized, allow-listed fields of a write payload.
// Nil pointers mean the field was absent (or null) in the request.
type fieldPatch struct {
	Title          *string
	Type           *string
	Status         *string
	Rating         *int
	CurrentEpisode *int
	TotalEpisodes  *int
	Notes          *string
}

// empty reports whether the patch carries no fields at all.
func (p fieldPatch) empty() bool {
	return p.Title == nil && p.Type == nil && p.Status == nil &&
		p.Rating == nil && p.CurrentEpisode == nil && p.TotalEpisodes == nil &&
		p.Notes == nil
}

// apply copies the patch's present fields onto the item.
func (p fieldPatch) apply(it *Item) {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Type != nil {
		it.Type = *p.Type
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	if p.Rating != nil {
		it.Rating = p.Rating
	}
	if p.CurrentEpisode != nil {
		it.CurrentEpisode = p.CurrentEpisode
	}
	if p.TotalEpisodes != nil {
		it.TotalEpisodes = p.TotalEpisodes
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
}
