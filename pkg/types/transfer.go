package types

// Transfer describes units of a token moved as part of a call response.
type Transfer struct {
	ID    TokenID `json:"id"`
	Value Amount  `json:"value"`
}
