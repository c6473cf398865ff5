// internal/mirror/model.go
package mirror

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is the relational mirror of a catalog product. The mirror is an
// independent, optional backend the storefront core could target later; it is
// deliberately not wired to the cart or order engines.
type Product struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Category    string         `json:"category" gorm:"size:100;index"`
	Stock       int            `json:"stock" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
