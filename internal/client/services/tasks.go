package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

// TaskPatch is a partial task update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Sprint      *int64  `json:"sprint,omitempty"`
}

type TaskService interface {
	List(ctx context.Context, sprintID *int64) ([]models.Task, error)
	Get(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, task models.Task) (*models.Task, error)
	Update(ctx context.Context, id int64, task models.Task) (*models.Task, error)
	Patch(ctx context.Context, id int64, patch TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	gateway Gateway
}

func NewTaskService(gateway Gateway) TaskService {
	return &taskService{gateway: gateway}
}

func (s *taskService) List(ctx context.Context, sprintID *int64) ([]models.Task, error) {
	endpoint := "/tasks/"
	if sprintID != nil {
		endpoint += "?" + url.Values{"sprint_id": {fmt.Sprint(*sprintID)}}.Encode()
	}
	var tasks []models.Task
	if err := s.gateway.Request(ctx, http.MethodGet, endpoint, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := s.gateway.Request(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskService) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	var created models.Task
	if err := s.gateway.Request(ctx, http.MethodPost, "/tasks/", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *taskService) Update(ctx context.Context, id int64, task models.Task) (*models.Task, error) {
	var updated models.Task
	if err := s.gateway.Request(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/", id), task, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *taskService) Patch(ctx context.Context, id int64, patch TaskPatch) (*models.Task, error) {
	var updated models.Task
	if err := s.gateway.Request(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/", id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Request(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d/", id), nil, nil)
}
