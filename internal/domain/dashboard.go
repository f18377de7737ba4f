package domain

// Dashboard is the home screen
type Dashboard struct {
	Members        []MemberSummary `json:"members"`
	UpcomingEvents []Event         `json:"upcoming_events"`
	PendingTasks   []Task          `json:"pending_tasks"`
}
