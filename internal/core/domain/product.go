package domain

import "time"

// Product is the core catalog aggregate. Products are created whole and
// never mutated except through an explicit update; there is no status
// lifecycle beyond existence.
type Product struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	SubTypes  []string  `json:"subTypes"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// Image is a stored binary payload referenced by Product.Image as
// /images/<id>. It lives in the blob store, not the product collection.
type Image struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	CreatedAt   time.Time
}

// IsValidProductID reports whether id follows the store's identifier
// convention: exactly 24 lowercase-insensitive hex characters.
func IsValidProductID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
