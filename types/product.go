package types

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ImageRefKind discriminates how a product image is addressed.
type ImageRefKind string

const (
	ImageKindURL      ImageRefKind = "url"
	ImageKindPath     ImageRefKind = "path"
	ImageKindFilename ImageRefKind = "filename"
)

// ImageRef is the single explicit representation of a product image
// reference. Legacy rows stored images as plain strings or ad-hoc JSON blobs
// and re-sniffed the shape at every read site; ImageRef is decoded exactly
// once, at the storage boundary, via ParseImageRef.
type ImageRef struct {
	Kind  ImageRefKind `json:"kind"`
	Value string       `json:"value"`
}

// IsZero reports whether the reference is unset.
func (r ImageRef) IsZero() bool {
	return r.Value == ""
}

// ParseImageRef decodes a stored image column value. It accepts the
// canonical {"kind":...,"value":...} form, legacy {"url":...} / {"path":...}
// JSON objects, and bare strings. Unknown shapes collapse to a filename ref.
func ParseImageRef(raw []byte) ImageRef {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ImageRef{}
	}

	var canonical ImageRef
	if err := json.Unmarshal(raw, &canonical); err == nil && canonical.Kind != "" {
		return canonical
	}

	var legacy map[string]string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if v, ok := legacy["url"]; ok && v != "" {
			return ImageRef{Kind: ImageKindURL, Value: v}
		}
		if v, ok := legacy["path"]; ok && v != "" {
			return ImageRef{Kind: ImageKindPath, Value: v}
		}
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		s = plain
	}
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return ImageRef{Kind: ImageKindURL, Value: s}
	case strings.Contains(s, "/"):
		return ImageRef{Kind: ImageKindPath, Value: s}
	default:
		return ImageRef{Kind: ImageKindFilename, Value: s}
	}
}

// Product is a catalog entry.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Capacity    string          `json:"capacity,omitempty"`
	Features    []string        `json:"features,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       ImageRef        `json:"image"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductCreate is the admin request body for creating a product.
// Description is rich text limited to the inline/structural tag allow-list.
type ProductCreate struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,max=100"`
	Capacity    string   `json:"capacity"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}

// ProductUpdate carries optional field updates; nil fields are unchanged.
type ProductUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Capacity    *string   `json:"capacity"`
	Features    *[]string `json:"features"`
	Price       *string   `json:"price"`
	IsActive    *bool     `json:"is_active"`
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}
