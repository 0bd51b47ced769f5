package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

var timeLayouts = []string{
	"2006-01-02",     // date only
	time.RFC3339,     // 2006-01-02T15:04:05Z07:00
	time.RFC3339Nano, // with nanoseconds
	"2006-01-02T15:04:05",
}

// parseTime accepts the layouts above. Date-only values become start
// of that day in UTC.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Deadline parses the deadline field from JSON as either date-only
// ("2006-01-02") or an RFC3339 datetime. An empty string means "no
// deadline".
type Deadline struct{ t *time.Time }

func (d *Deadline) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	parsed, err := parseTime(strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("deadline: %v", err)
	}
	d.t = &parsed
	return nil
}

// Ptr returns *time.Time for use in service/domain.
func (d Deadline) Ptr() *time.Time { return d.t }

type CreateTaskRequest struct {
	ListID      int64    `json:"list_id" binding:"required"`
	Title       string   `json:"title" binding:"required,min=1,max=120"`
	Description string   `json:"description" binding:"max=1000"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"` // default medium
	Deadline    Deadline `json:"deadline"`                                                  // optional: "2026-02-19" or RFC3339
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Completed   *bool     `json:"completed"`
	Deadline    *Deadline `json:"deadline"` // absent = keep, "" = clear, value = set
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	ListID      int64      `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ListTasksResponse is one page of a task query plus pager metadata.
type ListTasksResponse struct {
	Items      []TaskResponse `json:"items"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}
