package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrApprovalNotFound = errors.New("approval not found")
)
