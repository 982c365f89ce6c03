package models

import "time"

// User представляет учетную запись покупателя на сервере
type User struct {
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ID           string     `json:"id"` // UUID
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // encoded argon2id hash, наружу не отдается
}
