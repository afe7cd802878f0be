package handler

// messageRequest is one chat turn as received on the wire.
type messageRequest struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"    validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// chatRequest accepts both wire shapes the storefront sends: a full message
// list, or a single message with optional prior history.
type chatRequest struct {
	Messages    []messageRequest `json:"messages"    validate:"omitempty,dive"`
	Message     string           `json:"message"`
	ChatHistory []messageRequest `json:"chatHistory" validate:"omitempty,dive"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type preferencesRequest struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MaxPrice   float64  `json:"maxPrice" validate:"omitempty,gte=0"`
	Notes      string   `json:"notes"`
}

type purchaseRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
}

type recommendationsRequest struct {
	Preferences preferencesRequest `json:"preferences"`
	History     []purchaseRequest  `json:"history" validate:"omitempty,dive"`
}

type recommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

type notImplementedResponse struct {
	Message string `json:"message"`
}
