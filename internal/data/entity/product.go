package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "New"
	ConditionRefurbished ProductCondition = "Refurbished"
)

// Variant option shapes stored inside the product JSON blobs.
type ColorOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SizedOption struct {
	Size      string  `json:"size"`
	PriceBump float64 `json:"priceBump"`
}

type GradeOption struct {
	Name      string  `json:"name"`
	PriceBump float64 `json:"priceBump"`
}

type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	Base
	Name          string           `db:"name"`
	CategoryID    int              `db:"category_id"`
	Price         decimal.Decimal  `db:"price"`
	OriginalPrice decimal.Decimal  `db:"original_price"`
	Image         string           `db:"image"`
	Condition     ProductCondition `db:"condition"`
	IsNew         bool             `db:"is_new"`
	IsBestSeller  bool             `db:"is_best_seller"`
	IsFeatured    bool             `db:"is_featured"`
	IsActive      bool             `db:"is_active"`
	Stock         int              `db:"stock"`
	Description   *string          `db:"description"`

	// Decoded from the schema-free JSON columns.
	Colors         []ColorOption `db:"colors"`
	StorageOptions []SizedOption `db:"storage_options"`
	MemoryOptions  []SizedOption `db:"memory_options"`
	Grades         []GradeOption `db:"grades"`
	Specs          []SpecEntry   `db:"specs"`
	Images         []string      `db:"images"`
}

// DecodeList parses a stored variant blob back into its list form.
// A malformed or absent blob decodes to an empty list, never an error.
func DecodeList[T any](raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// EncodeList serializes a variant list for storage. A nil list encodes
// as the empty JSON array.
func EncodeList[T any](list []T) []byte {
	if list == nil {
		list = []T{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return []byte("[]")
	}
	return raw
}
