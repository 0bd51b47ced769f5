package service

import (
	"context"
	"strings"

	"taskboard/internal/cache"
	dom "taskboard/internal/domain"
	"taskboard/internal/repo"
)

// ListService owns the list lifecycle. Deleting a list cascades to
// its tasks, so the task cache is invalidated on that path too.
type ListService struct {
	lists repo.ListRepo
	cache *cache.TaskCache
}

// NewListService creates a ListService. If c is nil, caching is
// disabled.
func NewListService(lists repo.ListRepo, c *cache.TaskCache) *ListService {
	return &ListService{lists: lists, cache: c}
}

func (s *ListService) Create(ctx context.Context, ownerID int64, title, desc string) (dom.List, error) {
	return s.lists.Create(ctx, dom.List{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
	})
}

func (s *ListService) GetByID(ctx context.Context, ownerID, id int64) (dom.List, error) {
	l, err := s.lists.GetByID(ctx, ownerID, id)
	if err != nil {
		return dom.List{}, asNotFound(err)
	}
	return l, nil
}

func (s *ListService) List(ctx context.Context, ownerID int64) ([]dom.List, error) {
	return s.lists.ListByOwner(ctx, ownerID)
}

func (s *ListService) Update(ctx context.Context, ownerID, id int64, title, desc *string) (dom.List, error) {
	existing, err := s.lists.GetByID(ctx, ownerID, id)
	if err != nil {
		return dom.List{}, asNotFound(err)
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	l, err := s.lists.Update(ctx, ownerID, id, patch)
	if err != nil {
		return dom.List{}, asNotFound(err)
	}
	return l, nil
}

// Delete hides the list and everything in it.
func (s *ListService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.lists.SoftDelete(ctx, ownerID, id); err != nil {
		return asNotFound(err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateOwner(ctx, ownerID)
	}
	return nil
}
