package domain

// Client represents immutable client reference data. Read-only to the UI.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}
