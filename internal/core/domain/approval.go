package domain

import (
	"fmt"
	"time"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type Approval struct {
	ID         string
	Requester  string
	Type       string
	Details    string
	Status     ApprovalStatus
	CreatedAt  time.Time
	ApprovedBy string
	ApprovedAt time.Time
	RejectedBy string
	RejectedAt time.Time
}

// Approve transitions the approval to approved. Last write wins if
// racing with Reject.
func (a *Approval) Approve(userID string, at time.Time) {
	a.Status = ApprovalStatusApproved
	a.ApprovedBy = userID
	a.ApprovedAt = at
}

// Reject transitions the approval to rejected.
func (a *Approval) Reject(userID string, at time.Time) {
	a.Status = ApprovalStatusRejected
	a.RejectedBy = userID
	a.RejectedAt = at
}

// NewRequestID returns a time-based approval request token.
func NewRequestID() string {
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}
