package models

import "time"

const (
	LangRU = "ru"
	LangEN = "en"
	LangES = "es"
)

// User is a directory entry. IDs are opaque and stable (the chat
// platform's identifier, carried as a string). Users are created on
// first contact and never deleted.
type User struct {
	ID                   string     `json:"id"`
	Username             string     `json:"username,omitempty"`
	FirstName            string     `json:"first_name,omitempty"`
	Language             string     `json:"language"`
	TimezoneOffset       int        `json:"timezone_offset"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	CreatedAt            time.Time  `json:"created_at"`
	LastSyncAt           *time.Time `json:"last_sync_at,omitempty"`
}

// KnownLanguage reports whether lang is one of the supported codes.
func KnownLanguage(lang string) bool {
	return lang == LangRU || lang == LangEN || lang == LangES
}
