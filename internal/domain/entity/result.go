package entity

// WriteResult reports the outcome of an update in the shape the original
// API exposed to its clients.
type WriteResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}
