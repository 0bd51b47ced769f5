package query

import "taskboard/internal/domain"

// Result is one page of a query plus the bookkeeping a client needs
// to render a pager. Total counts the whole filtered collection, not
// the page.
type Result struct {
	Items      []domain.Task
	Total      int
	TotalPages int
	Page       int
	Limit      int
	HasNext    bool
	HasPrev    bool
}

// Paginate slices the window [(page-1)*limit, page*limit) out of
// tasks, clipped to the available length. TotalPages is the ceiling
// of Total/limit and zero for an empty collection. A page past the
// end yields empty Items with the bookkeeping intact, not an error.
func Paginate(tasks []domain.Task, page, limit int) Result {
	total := len(tasks)
	pages := (total + limit - 1) / limit
	res := Result{
		Items:      []domain.Task{},
		Total:      total,
		TotalPages: pages,
		Page:       page,
		Limit:      limit,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
	start := (page - 1) * limit
	if start >= total {
		return res
	}
	end := start + limit
	if end > total {
		end = total
	}
	res.Items = tasks[start:end]
	return res
}

// Run executes the whole pipeline over a snapshot: Filter, then
// SortTasks, then Paginate. Callers validate p first; Run assumes it
// holds well-formed values.
func Run(tasks []domain.Task, p Params) Result {
	filtered := Filter(tasks, p)
	sorted := SortTasks(filtered, p.SortBy, p.Order)
	return Paginate(sorted, p.Page, p.Limit)
}
