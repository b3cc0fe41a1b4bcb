package inmem

import "github.com/google/uuid"

// newID mirrors the uuid assignment the GORM hooks perform, so records
// created through the doubles carry the same id shape.
func newID() string {
	return uuid.NewString()
}
