package dto

type QuoteResponse struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}
