package models

import (
	"errors"
	"fmt"
)

var (
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrUnknownBookingType    = errors.New("unknown booking type")
	ErrUnknownVehicleType    = errors.New("vehicle_type is required")
	ErrInvalidTripFacts      = errors.New("invalid trip facts")
	ErrInvalidLocation       = errors.New("invalid location coordinates")
)

// ConfigNotFoundError names the configuration lookup that returned no active row
type ConfigNotFoundError struct {
	Kind string
	Key  string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s for %s", ErrConfigurationNotFound, e.Kind, e.Key)
}

// Is makes errors.Is(err, ErrConfigurationNotFound) succeed
func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigurationNotFound
}

// NewConfigNotFound builds a ConfigNotFoundError
func NewConfigNotFound(kind, key string) error {
	return &ConfigNotFoundError{Kind: kind, Key: key}
}
