package brand

import "errors"

var ErrBrandNotFound = errors.New("brand not found")

// Brand groups catalog products. NameTe holds the parallel-language name.
type Brand struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NameTe   string `json:"nameTe,omitempty"`
	IsActive bool   `json:"isActive"`
}
