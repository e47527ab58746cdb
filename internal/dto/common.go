package dto

// ListParams defines the shared pagination query parameters for list routes.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// StatusResponse is the envelope returned by mutations that do not echo the
// entity back (updates, deletes, logout).
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreatedResponse is the envelope returned by inserts.
type CreatedResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
	Message    string `json:"message,omitempty"`
}
