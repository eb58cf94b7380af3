package store

import (
	"context"
	"time"
)

// Visit is one tracked page view. Only the salted hash of the client IP is kept.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Selection is one click on a project tag filter.
type Selection struct {
	HashedIP  string    `json:"hashed_ip"`
	Tag       string    `json:"tag"`
	Timestamp time.Time `json:"timestamp"`
}

// TagCount is how often a tag filter was chosen.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// Stats summarizes visitor activity for the admin dashboard.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TotalSelections  int64      `json:"total_selections"`
	TopTags          []TagCount `json:"top_tags"`
	RecentVisitors   []Visit    `json:"recent_visitors"`
}

// Store persists visitor analytics.
type Store interface {
	RecordVisit(ctx context.Context, v Visit) error
	RecordSelection(ctx context.Context, s Selection) error
	Stats(ctx context.Context, now time.Time) (*Stats, error)
	RecentVisitors(ctx context.Context, limit int) ([]Visit, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}
