package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/dto"
	"taskboard/internal/repo"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires the handlers over in-memory repos with a stub
// auth middleware that signs every request in as user 1.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	taskRepo := repo.NewMemTaskRepo()
	listRepo := repo.NewMemListRepo(taskRepo)
	taskSvc := service.NewTaskService(taskRepo, listRepo, nil)
	listSvc := service.NewListService(listRepo, nil)

	tasks := NewTaskHandler(taskSvc)
	lists := NewListHandler(listSvc)
	reports := NewAnalyticsHandler(taskSvc)

	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) { auth.SetUserID(c, 1) })

	api.POST("/lists", lists.Create)
	api.GET("/lists", lists.List)
	api.GET("/lists/:id", lists.GetByID)
	api.PATCH("/lists/:id", lists.Update)
	api.DELETE("/lists/:id", lists.Delete)

	api.POST("/tasks", tasks.Create)
	api.GET("/tasks", tasks.List)
	api.GET("/tasks/search", tasks.Search)
	api.GET("/tasks/overdue", tasks.Overdue)
	api.GET("/tasks/due-soon", tasks.DueSoon)
	api.GET("/tasks/:id", tasks.GetByID)
	api.PATCH("/tasks/:id", tasks.Update)
	api.DELETE("/tasks/:id", tasks.Delete)
	api.POST("/tasks/:id/complete", tasks.Complete)
	api.POST("/tasks/:id/reopen", tasks.Reopen)

	api.GET("/analytics/stats", reports.Stats)
	api.GET("/analytics/deadlines", reports.Deadlines)
	api.GET("/analytics/productivity", reports.Productivity)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func createList(t *testing.T, r *gin.Engine, title string) int64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/lists", gin.H{"title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("create list: status %d, body %s", w.Code, w.Body.String())
	}
	return decode[dto.ListResponse](t, w).ID
}

func TestTaskEndpointsFlow(t *testing.T) {
	r := newTestRouter()
	listID := createList(t, r, "inbox")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"list_id":  listID,
		"title":    "pay rent",
		"priority": "high",
		"deadline": "2030-01-02",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create task: status %d, body %s", w.Code, w.Body.String())
	}
	created := decode[dto.TaskResponse](t, w)
	if created.Priority != "high" || created.Deadline == nil {
		t.Fatalf("created = %+v", created)
	}
	if want := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC); !created.Deadline.Equal(want) {
		t.Fatalf("deadline = %v, want %v", created.Deadline, want)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"list_id": listID, "title": "water plants"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create second task: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks?priority=high", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("query: status %d, body %s", w.Code, w.Body.String())
	}
	page := decode[dto.ListTasksResponse](t, w)
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].Title != "pay rent" {
		t.Fatalf("query result = %+v", page)
	}
	if page.Page != 1 || page.Limit != 10 || page.HasNext || page.HasPrev {
		t.Fatalf("pager metadata = %+v", page)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/search?q=rent", nil)
	found := decode[dto.ListTasksResponse](t, w)
	if w.Code != http.StatusOK || found.Total != 1 {
		t.Fatalf("search: status %d, body %s", w.Code, w.Body.String())
	}

	compl := doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+itoa(created.ID)+"/complete", nil)
	if compl.Code != http.StatusOK {
		t.Fatalf("complete: status %d, body %s", compl.Code, compl.Body.String())
	}
	if got := decode[dto.TaskResponse](t, compl); !got.Completed || got.CompletedAt == nil {
		t.Fatalf("complete result = %+v", got)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/analytics/stats", nil)
	stats := decode[dto.StatsResponse](t, w)
	if stats.Total != 2 || stats.Completed != 1 || stats.CompletionRate != 50.0 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.PriorityBreakdown["high"] != 1 || stats.PriorityBreakdown["medium"] != 1 {
		t.Fatalf("breakdown = %+v", stats.PriorityBreakdown)
	}
}

func TestQueryValidation(t *testing.T) {
	r := newTestRouter()

	bad := []string{
		"page=0",
		"page=-3",
		"limit=0",
		"limit=101",
		"sort_by=height",
		"order=sideways",
		"priority=extreme",
		"due_before=yesterdayish",
		"due_after=13-13-2030",
	}
	for _, qs := range bad {
		w := doJSON(t, r, http.MethodGet, "/api/v1/tasks?"+qs, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400 (body %s)", qs, w.Code, w.Body.String())
		}
	}

	// boundary values pass
	for _, qs := range []string{"page=1", "limit=100", "limit=1", "sort_by=deadline&order=asc"} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/tasks?"+qs, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200 (body %s)", qs, w.Code, w.Body.String())
		}
	}
}

func TestCreateTaskValidation(t *testing.T) {
	r := newTestRouter()
	listID := createList(t, r, "inbox")

	cases := []struct {
		name string
		body gin.H
		want int
	}{
		{"missing title", gin.H{"list_id": listID}, http.StatusBadRequest},
		{"missing list", gin.H{"title": "orphan"}, http.StatusBadRequest},
		{"bad priority", gin.H{"list_id": listID, "title": "x", "priority": "extreme"}, http.StatusBadRequest},
		{"bad deadline", gin.H{"list_id": listID, "title": "x", "deadline": "not a date"}, http.StatusBadRequest},
		{"past deadline", gin.H{"list_id": listID, "title": "x", "deadline": "2020-01-01"}, http.StatusBadRequest},
		{"unknown list", gin.H{"list_id": 999, "title": "x"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", tc.body)
		if w.Code != tc.want {
			t.Errorf("%s: status %d, want %d (body %s)", tc.name, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestUpdateTaskDeadlineTriState(t *testing.T) {
	r := newTestRouter()
	listID := createList(t, r, "inbox")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"list_id": listID, "title": "call bank", "deadline": "2030-06-01T10:00:00Z",
	})
	task := decode[dto.TaskResponse](t, w)

	// absent deadline keeps the old one
	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+itoa(task.ID), gin.H{"title": "call the bank"})
	got := decode[dto.TaskResponse](t, w)
	if w.Code != http.StatusOK || got.Deadline == nil || got.Title != "call the bank" {
		t.Fatalf("keep: status %d, body %s", w.Code, w.Body.String())
	}

	// empty string clears it
	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+itoa(task.ID), gin.H{"deadline": ""})
	got = decode[dto.TaskResponse](t, w)
	if w.Code != http.StatusOK || got.Deadline != nil {
		t.Fatalf("clear: status %d, body %s", w.Code, w.Body.String())
	}

	// a fresh value sets it
	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+itoa(task.ID), gin.H{"deadline": "2031-01-01"})
	got = decode[dto.TaskResponse](t, w)
	if w.Code != http.StatusOK || got.Deadline == nil {
		t.Fatalf("set: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestNotFoundAndBadIDs(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing task: status %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/v1/lists/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing list: status %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/overdue?list_id=zero", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad list_id: status %d", w.Code)
	}
}

func TestDeadlineBucketsEndpoint(t *testing.T) {
	r := newTestRouter()
	listID := createList(t, r, "inbox")

	due := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"list_id": listID, "title": "due today", "deadline": due})
	doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"list_id": listID, "title": "whenever"})

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics/deadlines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("deadlines: status %d, body %s", w.Code, w.Body.String())
	}
	groups := decode[dto.DeadlineGroupsResponse](t, w)
	if len(groups.NoDeadline) != 1 || groups.NoDeadline[0].Title != "whenever" {
		t.Fatalf("no_deadline = %+v", groups.NoDeadline)
	}
	// an hour from now lands in today or tomorrow depending on wall
	// clock, never anywhere else
	if len(groups.Today)+len(groups.Tomorrow) != 1 {
		t.Fatalf("dated bucket = %+v", groups)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
