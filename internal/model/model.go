// Package model contains domain entities and DTOs used across layers.
// Kept lean and focused on data shapes without behavior.
package model

import "time"

// Article is the demo entity served by the reference API.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
