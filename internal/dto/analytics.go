package dto

type StatsResponse struct {
	Total             int            `json:"total"`
	Completed         int            `json:"completed"`
	Pending           int            `json:"pending"`
	Overdue           int            `json:"overdue"`
	CompletionRate    float64        `json:"completion_rate"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
}

type DeadlineGroupsResponse struct {
	Overdue    []TaskResponse `json:"overdue"`
	Today      []TaskResponse `json:"today"`
	Tomorrow   []TaskResponse `json:"tomorrow"`
	ThisWeek   []TaskResponse `json:"this_week"`
	Later      []TaskResponse `json:"later"`
	NoDeadline []TaskResponse `json:"no_deadline"`
}

type ProductivityResponse struct {
	CreatedThisWeek      int     `json:"created_this_week"`
	CompletedThisWeek    int     `json:"completed_this_week"`
	CompletedThisMonth   int     `json:"completed_this_month"`
	WeeklyCompletionRate float64 `json:"weekly_completion_rate"`
	AverageTasksPerDay   float64 `json:"average_tasks_per_day"`
	MostProductiveDay    string  `json:"most_productive_day"`
	CompletionTrend      string  `json:"completion_trend"`
}
