package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jiji-learning/jiji-backend/pkg/answers"
	"github.com/jiji-learning/jiji-backend/pkg/resources"
)

// ResourceStore is the slice of the storage layer the ask pipeline needs.
// *resources.Store satisfies it; tests swap in an in-memory fake.
type ResourceStore interface {
	ListAll(ctx context.Context) ([]resources.Resource, error)
	ListRecent(ctx context.Context, limit int) ([]resources.ResourceResponse, error)
	SaveQuery(ctx context.Context, rec resources.QueryRecord) error
}

type Service struct {
	Store ResourceStore
}

func NewService(store ResourceStore) *Service {
	return &Service{Store: store}
}

// AskResult is the successful payload of the ask pipeline.
type AskResult struct {
	Answer    string                       `json:"answer"`
	Resources []resources.ResourceResponse `json:"resources"`
	QueryID   string                       `json:"queryId"`
}

// Ask runs the matching pipeline for an already-validated, sanitized query.
// Storage reads fail open: an error degrades to an empty result set so the
// client always gets an answer. The query-log write is detached and
// best-effort.
func (s *Service) Ask(ctx context.Context, query, userID string) (*AskResult, error) {
	matched := s.searchResources(ctx, query)

	// No match (or the store was unreachable): serve any recent resources.
	if len(matched) == 0 {
		matched = s.recentResources(ctx)
	}

	answer := answers.ForQuery(query)
	queryID := uuid.New().String()

	if userID != "" {
		go s.logQuery(queryID, userID, query, answer)
	}

	return &AskResult{
		Answer:    answer,
		Resources: matched,
		QueryID:   queryID,
	}, nil
}

func (s *Service) searchResources(ctx context.Context, query string) []resources.ResourceResponse {
	all, err := s.Store.ListAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch resources, continuing with empty set", "error", err)
		return nil
	}
	return resources.Search(query, all)
}

func (s *Service) recentResources(ctx context.Context) []resources.ResourceResponse {
	recent, err := s.Store.ListRecent(ctx, resources.MaxResults)
	if err != nil {
		slog.Error("Failed to fetch fallback resources, continuing with empty set", "error", err)
		return []resources.ResourceResponse{}
	}
	if recent == nil {
		recent = []resources.ResourceResponse{}
	}
	return recent
}

// logQuery persists the query log entry outside the request lifecycle so a
// cancelled request or a slow insert cannot affect the response.
func (s *Service) logQuery(queryID, userID, query, answer string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := resources.QueryRecord{
		ID:           queryID,
		UserID:       userID,
		QueryText:    query,
		ResponseText: answer,
	}
	if err := s.Store.SaveQuery(ctx, rec); err != nil {
		slog.Warn("Failed to save query log", "queryId", queryID, "error", err)
	}
}
