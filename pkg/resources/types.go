package resources

import "time"

// ResourceType is the kind of learning asset.
type ResourceType string

const (
	TypePresentation ResourceType = "presentation"
	TypeVideo        ResourceType = "video"
)

// Resource is a stored learning asset. Description and Tags are optional and
// only participate in matching; they are never returned to clients.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        ResourceType `json:"type"`
	StoragePath string       `json:"storage_path,omitempty"`
	PublicURL   string       `json:"public_url"`
	Tags        []string     `json:"tags,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ResourceResponse is the client-facing projection of a Resource.
type ResourceResponse struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Type  ResourceType `json:"type"`
	URL   string       `json:"url"`
}

// QueryRecord is a row in the query log.
type QueryRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	QueryText    string    `json:"query_text"`
	ResponseText string    `json:"response_text"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Resource) toResponse() ResourceResponse {
	return ResourceResponse{
		ID:    r.ID,
		Title: r.Title,
		Type:  r.Type,
		URL:   r.PublicURL,
	}
}
