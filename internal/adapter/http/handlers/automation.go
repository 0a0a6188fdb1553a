package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/le0623/slack-app-demo/internal/adapter/http/dto"
	"github.com/le0623/slack-app-demo/internal/adapter/http/mapper"
	"github.com/le0623/slack-app-demo/internal/adapter/http/middleware"
	"github.com/le0623/slack-app-demo/internal/core/domain"
	"github.com/le0623/slack-app-demo/internal/core/ports"
	"github.com/le0623/slack-app-demo/pkg/apierrors"
)

// AutomationHandler exposes a read-only view of the automation store.
// All mutations happen through Slack interactions, never through this
// API.
type AutomationHandler struct {
	store    ports.AutomationStore
	jobCount func() int
}

func NewAutomationHandler(store ports.AutomationStore, jobCount func() int) *AutomationHandler {
	return &AutomationHandler{store: store, jobCount: jobCount}
}

func (h *AutomationHandler) Status(c *gin.Context) {
	jobs := 0
	if h.jobCount != nil {
		jobs = h.jobCount()
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Message:       "Slack Automation Bot",
		Status:        "running",
		ScheduledJobs: jobs,
	})
}

func (h *AutomationHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToTaskItems(h.store.Tasks()))
}

func (h *AutomationHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, err := h.store.TaskByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgTaskNotFound, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *AutomationHandler) ListApprovals(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToApprovalItems(h.store.Approvals()))
}

func (h *AutomationHandler) GetApproval(c *gin.Context) {
	lang := middleware.GetLang(c)

	approval, err := h.store.ApprovalByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrApprovalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgApprovalNotFound, lang),
			)
			return
		}
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgApprovalNotFound, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToApprovalItem(approval))
}
