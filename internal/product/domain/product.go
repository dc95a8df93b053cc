package domain

import (
	"encoding/json"
	"time"
)

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"` // float to stay wire-compatible with JSON numbers
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest is the untrusted POST /items body. Pointers let a
// missing field be told apart from an empty one.
type CreateProductRequest struct {
	Name  *string  `json:"name" validate:"required,min=1"`
	Price *float64 `json:"price" validate:"required,gt=0"`

	// json names of fields sent as an explicit null
	nulls map[string]bool
}

// UnmarshalJSON decodes the body and remembers which keys carried null, so
// {"name": null} is reported as a type error rather than as a missing field.
func (r *CreateProductRequest) UnmarshalJSON(data []byte) error {
	type plain CreateProductRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.nulls = nil
	for key, value := range raw {
		if string(value) != "null" {
			continue
		}
		if r.nulls == nil {
			r.nulls = make(map[string]bool)
		}
		r.nulls[key] = true
	}
	return nil
}

// ProductCreate is a request that passed validation. Obtain it through
// NewProductCreate only.
type ProductCreate struct {
	Name  string
	Price float64
}
