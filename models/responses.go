package models

// MessageResponse is the body of every error and of plain confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	ID      int64  `json:"id"`
}

// AuthResult is what login, token check and activation hand back to clients.
type AuthResult struct {
	Message    string     `json:"message,omitempty"`
	Token      string     `json:"token"`
	User       Claims     `json:"user"`
	Properties []Property `json:"properties"`
}

// ToggleAdminResponse reports the new admin flag of a user.
type ToggleAdminResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
}

// CreatedResponse confirms creation of a resource.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// IndexResponse is returned by GET /.
type IndexResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
}
