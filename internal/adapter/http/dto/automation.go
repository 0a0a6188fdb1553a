package dto

type TaskItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	Status      string `json:"status"`
}

type ApprovalItem struct {
	ID         string `json:"id"`
	Requester  string `json:"requester"`
	Type       string `json:"type"`
	Details    string `json:"details"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ApprovedBy string `json:"approved_by,omitempty"`
	ApprovedAt string `json:"approved_at,omitempty"`
	RejectedBy string `json:"rejected_by,omitempty"`
	RejectedAt string `json:"rejected_at,omitempty"`
}

type StatusResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	ScheduledJobs int    `json:"scheduled_jobs"`
}
