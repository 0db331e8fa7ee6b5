package registry

import (
	"context"
	"encoding/json"
	"fmt"
)

type RepositoriesService interface {
	List(ctx context.Context) ([]string, error)
}

type repositoriesService struct {
	client *Client
}

type catalogResponse struct {
	Repositories []string `json:"repositories"`
}

// List retrieves every repository name in the registry. An empty registry
// returns an empty slice.
func (s *repositoriesService) List(ctx context.Context) ([]string, error) {
	respData, err := s.client.DoRequest(ctx, "/acr/v1/_catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository catalog: %w", err)
	}

	var parsed catalogResponse
	if err := json.Unmarshal(respData, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse repository catalog: %w", err)
	}
	return parsed.Repositories, nil
}
