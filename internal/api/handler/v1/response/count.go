package response

// CountResponse reports how many rows a bulk write persisted.
type CountResponse struct {
	Count int `json:"count"`
}
