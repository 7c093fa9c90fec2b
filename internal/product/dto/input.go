package dto

// QuoteSelection is one option group's chosen value IDs as sent by the
// storefront. For radio groups only the last value applies; for check_box
// and select groups all values accumulate.
type QuoteSelection struct {
	GroupID  int64   `json:"group_id" validate:"required"`
	ValueIDs []int64 `json:"value_ids" validate:"required,min=1"`
}

type QuoteInput struct {
	ProductID  int64            `json:"-"`
	Lang       string           `json:"-"`
	Selections []QuoteSelection `json:"selections" validate:"dive"`
}

type QuoteItem struct {
	ValueID    int64  `json:"value_id"`
	GroupID    int64  `json:"group_id"`
	GroupName  string `json:"group_name"`
	Name       string `json:"name"`
	PriceExtra int64  `json:"price_extra"`
}

type QuoteResult struct {
	ProductID   int64       `json:"product_id"`
	ProductName string      `json:"product_name"`
	Currency    string      `json:"currency"`
	BasePrice   int64       `json:"base_price"`
	Total       int64       `json:"total"`
	Items       []QuoteItem `json:"items"`
	Summary     []string    `json:"summary"` // selected display names, insertion order
}
