package models

// AuthResponse is returned by register and login.
// The token itself travels in the Authorization header.
type AuthResponse struct {
	User User `json:"user"`
}

// ItemsResponse is the full collection of the caller.
type ItemsResponse struct {
	Items  []Item `json:"items"`
	Length int    `json:"length"`
}

// CreateItemResponse carries the id assigned to a created item.
type CreateItemResponse struct {
	ID string `json:"id"`
}

// UpdateUserRequest changes the caller's profile.
type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
}

// VersionResponse is served by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
