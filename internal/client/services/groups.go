package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

type GroupService interface {
	List(ctx context.Context) ([]models.Group, error)
	Get(ctx context.Context, id int64) (*models.Group, error)
	Create(ctx context.Context, group models.Group) (*models.Group, error)
	Update(ctx context.Context, id int64, group models.Group) (*models.Group, error)
	Delete(ctx context.Context, id int64) error
	// Join adds the current user to the group identified by its join code.
	Join(ctx context.Context, joinCode string) (*models.Group, error)
}

type groupService struct {
	gateway Gateway
}

func NewGroupService(gateway Gateway) GroupService {
	return &groupService{gateway: gateway}
}

func (s *groupService) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := s.gateway.Request(ctx, http.MethodGet, "/groups/", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *groupService) Get(ctx context.Context, id int64) (*models.Group, error) {
	var group models.Group
	if err := s.gateway.Request(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/", id), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *groupService) Create(ctx context.Context, group models.Group) (*models.Group, error) {
	var created models.Group
	if err := s.gateway.Request(ctx, http.MethodPost, "/groups/", group, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *groupService) Update(ctx context.Context, id int64, group models.Group) (*models.Group, error) {
	var updated models.Group
	if err := s.gateway.Request(ctx, http.MethodPut, fmt.Sprintf("/groups/%d/", id), group, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *groupService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Request(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d/", id), nil, nil)
}

func (s *groupService) Join(ctx context.Context, joinCode string) (*models.Group, error) {
	joinCode = strings.TrimSpace(joinCode)
	if joinCode == "" {
		return nil, fmt.Errorf("%w: join code is required", ErrValidation)
	}
	var group models.Group
	if err := s.gateway.Request(ctx, http.MethodPost, "/groups/join/", map[string]string{"join_code": joinCode}, &group); err != nil {
		return nil, err
	}
	return &group, nil
}
