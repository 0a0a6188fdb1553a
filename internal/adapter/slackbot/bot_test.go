package slackbot

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"

	"github.com/le0623/slack-app-demo/internal/core/domain"
)

func TestTaskInputFromViewState_AllFields(t *testing.T) {
	values := map[string]map[string]slack.BlockAction{
		"task_title": {
			"title_input": {Value: "Ship report"},
		},
		"task_description": {
			"description_input": {Value: "quarterly numbers"},
		},
		"task_priority": {
			"priority_select": {SelectedOption: slack.OptionBlockObject{Value: "high"}},
		},
		"task_due_date": {
			"due_date_picker": {SelectedDate: "2026-09-15"},
		},
	}

	input := taskInputFromViewState(values, "U123")

	require.Equal(t, domain.CreateTaskInput{
		Title:       "Ship report",
		Description: "quarterly numbers",
		Priority:    domain.TaskPriorityHigh,
		DueDate:     "2026-09-15",
		CreatedBy:   "U123",
	}, input)
}

func TestTaskInputFromViewState_MissingOptionalBlocks(t *testing.T) {
	// Optional inputs left empty never reach the view state; they
	// must default silently instead of erroring.
	values := map[string]map[string]slack.BlockAction{
		"task_title": {
			"title_input": {Value: "Ship report"},
		},
		"task_priority": {
			"priority_select": {SelectedOption: slack.OptionBlockObject{Value: "medium"}},
		},
	}

	input := taskInputFromViewState(values, "U9")

	require.Equal(t, "Ship report", input.Title)
	require.Equal(t, "", input.Description)
	require.Equal(t, "", input.DueDate)
	require.Equal(t, domain.TaskPriorityMedium, input.Priority)
	require.Equal(t, "U9", input.CreatedBy)
}
