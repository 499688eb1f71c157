package builder

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// BatchPayload represents the result of batch operations (CreateMany, UpdateMany, DeleteMany)
type BatchPayload struct {
	// Count is the number of records affected
	Count int `json:"count"`
}
