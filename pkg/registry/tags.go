package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type TagsService interface {
	List(ctx context.Context, repository string) ([]Tag, error)
}

type tagsService struct {
	client *Client
}

// Tag is one tag entry from the ACR tag list endpoint.
type Tag struct {
	Name    string    `json:"name"`
	Digest  string    `json:"digest"`
	Created time.Time `json:"createdTime"`
}

type tagListResponse struct {
	Registry  string `json:"registry"`
	ImageName string `json:"imageName"`
	Tags      []Tag  `json:"tags"`
}

// List retrieves the tags of a repository, newest first as the registry
// returns them. An unknown repository surfaces as an *APIError with 404.
func (s *tagsService) List(ctx context.Context, repository string) ([]Tag, error) {
	path := fmt.Sprintf("/acr/v1/%s/_tags", pathEncode(repository))
	respData, err := s.client.DoRequest(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags for %q: %w", repository, err)
	}

	var parsed tagListResponse
	if err := json.Unmarshal(respData, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tag list: %w", err)
	}
	return parsed.Tags, nil
}
