package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// productResponse is the wire shape of a catalog product. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type productResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	SubTypes  []string  `json:"subTypes"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type productMessageResponse struct {
	Message string          `json:"message"`
	Product productResponse `json:"product"`
}

type messageResponse struct {
	Message string `json:"message"`
}
