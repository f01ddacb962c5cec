package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

type SprintService interface {
	List(ctx context.Context) ([]models.Sprint, error)
	Get(ctx context.Context, id int64) (*models.Sprint, error)
	Create(ctx context.Context, sprint models.Sprint) (*models.Sprint, error)
	Update(ctx context.Context, id int64, sprint models.Sprint) (*models.Sprint, error)
	Delete(ctx context.Context, id int64) error
}

type sprintService struct {
	gateway Gateway
}

func NewSprintService(gateway Gateway) SprintService {
	return &sprintService{gateway: gateway}
}

func (s *sprintService) List(ctx context.Context) ([]models.Sprint, error) {
	var sprints []models.Sprint
	if err := s.gateway.Request(ctx, http.MethodGet, "/sprints/", nil, &sprints); err != nil {
		return nil, err
	}
	return sprints, nil
}

func (s *sprintService) Get(ctx context.Context, id int64) (*models.Sprint, error) {
	var sprint models.Sprint
	if err := s.gateway.Request(ctx, http.MethodGet, fmt.Sprintf("/sprints/%d/", id), nil, &sprint); err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (s *sprintService) Create(ctx context.Context, sprint models.Sprint) (*models.Sprint, error) {
	var created models.Sprint
	if err := s.gateway.Request(ctx, http.MethodPost, "/sprints/", sprint, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *sprintService) Update(ctx context.Context, id int64, sprint models.Sprint) (*models.Sprint, error) {
	var updated models.Sprint
	if err := s.gateway.Request(ctx, http.MethodPut, fmt.Sprintf("/sprints/%d/", id), sprint, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *sprintService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Request(ctx, http.MethodDelete, fmt.Sprintf("/sprints/%d/", id), nil, nil)
}
