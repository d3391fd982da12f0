package models

import "time"

// Row is one database row keyed by column name
type Row map[string]any

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateResourceRequest is the body accepted by every create endpoint.
// Only the mandatory field is ever persisted.
type CreateResourceRequest struct {
	Name string `json:"name" form:"name"`
}

func (r CreateResourceRequest) Fields() map[string]any {
	return map[string]any{"name": r.Name}
}

type Count struct {
	Total int64 `json:"total"`
}

type Stats struct {
	Projects  Count `json:"projects"`
	Materials Count `json:"materials"`
	Personnel Count `json:"personnel"`
	Tasks     Count `json:"tasks"`
}
