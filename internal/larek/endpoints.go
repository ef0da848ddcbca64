package larek

import (
	"encoding/json"
	"net/url"

	"github.com/shopspring/decimal"
)

// Backend paths, relative to the API base URL
const (
	PathProducts = "/lot"
	PathOrder    = "/order"
)

func productPath(id string) string {
	return PathProducts + "/" + url.PathEscape(id)
}

// productRecord is a lot as the backend sends it
type productRecord struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Title       string              `json:"title"`
	Category    string              `json:"category"`
	Price       decimal.NullDecimal `json:"price"`
}

// productList is the GET /lot answer
type productList struct {
	Total int             `json:"total"`
	Items []productRecord `json:"items"`
}

// orderRequest is the POST /order body
type orderRequest struct {
	Payment string      `json:"payment"`
	Address string      `json:"address"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Total   json.Number `json:"total"`
	Items   []string    `json:"items"`
}
