package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// updateStockRequest carries a signed delta; Quantity is a pointer so that
// an explicit zero is distinguishable from a missing field.
type updateStockRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
