package domain

// Derived analytics views. All of these are ephemeral projections recomputed
// on every request from the task set; nothing here is ever persisted.

type DashboardSummary struct {
	TodayProgress  int    `json:"todayProgress"`
	Streak         int    `json:"streak"`
	Mood           string `json:"mood"`
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
	UserName       string `json:"userName,omitempty"`
}

type WeeklyBucket struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

type ProductivityPoint struct {
	Date         string `json:"date"`
	Productivity int    `json:"productivity"`
	Completed    int    `json:"completed"`
	Total        int    `json:"total"`
}

type CategoryShare struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
}

type TimeSlotShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MonthlyTrendPoint struct {
	Month      string `json:"month"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Efficiency int    `json:"efficiency"`
}
