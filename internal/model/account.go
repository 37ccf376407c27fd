package model

// Account is a stored user record. PasswordHash never leaves the process:
// it is excluded from every JSON rendering.
type Account struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	PasswordHash string `json:"-"`
	CreateOn     int64  `json:"create_on"`
	LastUpdate   int64  `json:"last_update"`
}
