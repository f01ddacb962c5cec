package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

func TestTaskService_EndpointsAndMethods(t *testing.T) {
	gw := &fakeGateway{Respond: []models.Task{}}
	svc := NewTaskService(gw)
	ctx := context.Background()

	sprintID := int64(5)
	_, err := svc.List(ctx, &sprintID)
	require.NoError(t, err)
	require.Equal(t, "GET", gw.Calls[0].Method)
	require.Equal(t, "/tasks/?sprint_id=5", gw.Calls[0].Endpoint)

	_, err = svc.List(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, "/tasks/", gw.Calls[1].Endpoint)

	gw.Respond = models.Task{ID: 7, Title: "write docs", Status: models.TaskStatusTodo}
	task, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "write docs", task.Title)
	require.Equal(t, "/tasks/7/", gw.Calls[2].Endpoint)

	_, err = svc.Create(ctx, models.Task{Title: "new"})
	require.NoError(t, err)
	require.Equal(t, "POST", gw.Calls[3].Method)
	require.Equal(t, "/tasks/", gw.Calls[3].Endpoint)

	status := models.TaskStatusDone
	_, err = svc.Patch(ctx, 7, TaskPatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "PATCH", gw.Calls[4].Method)
	require.Equal(t, "/tasks/7/", gw.Calls[4].Endpoint)
	require.Equal(t, TaskPatch{Status: &status}, gw.Calls[4].Body)

	gw.Respond = nil
	require.NoError(t, svc.Delete(ctx, 7))
	require.Equal(t, "DELETE", gw.Calls[5].Method)
}

func TestSprintService_EndpointsAndMethods(t *testing.T) {
	gw := &fakeGateway{Respond: []models.Sprint{{ID: 1, Name: "Sprint 1"}}}
	svc := NewSprintService(gw)
	ctx := context.Background()

	sprints, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sprints, 1)
	require.Equal(t, "/sprints/", gw.Calls[0].Endpoint)

	gw.Respond = models.Sprint{ID: 2, Name: "Sprint 2"}
	_, err = svc.Update(ctx, 2, models.Sprint{Name: "Sprint 2"})
	require.NoError(t, err)
	require.Equal(t, "PUT", gw.Calls[1].Method)
	require.Equal(t, "/sprints/2/", gw.Calls[1].Endpoint)
}

func TestGroupService_Join(t *testing.T) {
	gw := &fakeGateway{Respond: models.Group{ID: 3, Name: "Team A"}}
	svc := NewGroupService(gw)
	ctx := context.Background()

	group, err := svc.Join(ctx, "  AB12CD34  ")
	require.NoError(t, err)
	require.Equal(t, "Team A", group.Name)
	require.Equal(t, "/groups/join/", gw.Calls[0].Endpoint)
	require.Equal(t, map[string]string{"join_code": "AB12CD34"}, gw.Calls[0].Body)
}

func TestGroupService_Join_EmptyCode_FailsLocally(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewGroupService(gw)

	_, err := svc.Join(context.Background(), "   ")
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, gw.Calls)
}
