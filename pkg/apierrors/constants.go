package apierrors

const (
	MsgTaskNotFound     = "taskNotFound"
	MsgApprovalNotFound = "approvalNotFound"
)
