package dto

import (
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/query"
)

// TaskQueryRequest is the query-string form of a task query, bound
// with ShouldBindQuery. Pointer fields distinguish "absent" from an
// explicit zero so that page=0 is rejected instead of silently
// defaulted.
type TaskQueryRequest struct {
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority"`
	DueBefore string `form:"due_before"`
	DueAfter  string `form:"due_after"`
	SortBy    string `form:"sort_by"`
	Order     string `form:"order"`
	Page      *int   `form:"page"`
	Limit     *int   `form:"limit"`
	ListID    *int64 `form:"list_id"`
}

// ToParams fills defaults, parses times and priorities, and runs the
// range/enum validation. Every failure wraps query.ErrInvalidQuery.
func (r TaskQueryRequest) ToParams() (query.Params, error) {
	p := query.DefaultParams()
	p.Completed = r.Completed

	if s := strings.TrimSpace(r.Priority); s != "" {
		pri, err := domain.ParsePriority(s)
		if err != nil {
			return query.Params{}, fmt.Errorf("%w: %v", query.ErrInvalidQuery, err)
		}
		p.Priority = &pri
	}
	if s := strings.TrimSpace(r.DueBefore); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return query.Params{}, fmt.Errorf("%w: due_before: %v", query.ErrInvalidQuery, err)
		}
		p.DueBefore = &t
	}
	if s := strings.TrimSpace(r.DueAfter); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return query.Params{}, fmt.Errorf("%w: due_after: %v", query.ErrInvalidQuery, err)
		}
		p.DueAfter = &t
	}

	if r.SortBy != "" {
		p.SortBy = query.SortField(r.SortBy)
	}
	if r.Order != "" {
		p.Order = query.Order(r.Order)
	}
	if r.Page != nil {
		p.Page = *r.Page
	}
	if r.Limit != nil {
		p.Limit = *r.Limit
	}

	if err := p.Validate(); err != nil {
		return query.Params{}, err
	}
	return p, nil
}
