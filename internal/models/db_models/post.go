package db_models

import (
	"github.com/lib/pq"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusLocked   Status = "LOCKED"
	StatusInactive Status = "INACTIVE"
)

// Count holds the demographic split of a trip's participants.
// Kept on the record because the post service stores it; the
// notification flow never reads it.
type Count struct {
	MaleCount   int `json:"maleCount"`
	FemaleCount int `json:"femaleCount"`
	OtherCount  int `json:"otherCount"`
}

func (c Count) TotalCount() int {
	return c.MaleCount + c.FemaleCount + c.OtherCount
}

type TimelineEntry struct {
	Title  string   `json:"title"`
	Date   string   `json:"date"` // calendar date, yyyy-MM-dd
	Events []string `json:"events"`
}

// Post is one travel post/itinerary as the post service persists it.
// The id doubles as PostId, ChatId and TimelineId upstream, so it stays
// an opaque string here. Dates are stored as plain yyyy-MM-dd strings
// and parsed at evaluation time.
type Post struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Title       string          `json:"title"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Count       Count           `gorm:"embedded;embeddedPrefix:count_" json:"count"`
	Events      []TimelineEntry `gorm:"type:jsonb;serializer:json" json:"events"`
	Amount      float64         `json:"amount"`
	Users       pq.StringArray  `gorm:"type:text[]" json:"users"`
	Status      Status          `json:"status"`
	AdminName   string          `json:"adminName"`
	Days        int             `json:"days"`
	Nights      int             `json:"nights"`
}

func (Post) TableName() string {
	return "posts"
}
