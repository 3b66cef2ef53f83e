package models

// User represents a dashboard account. CreatedAt keeps the storage-side
// timestamp string as-is.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
}
