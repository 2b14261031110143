package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/primedice/internal/common/uuid UUID

// UUID generates roll identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (version 4) UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
