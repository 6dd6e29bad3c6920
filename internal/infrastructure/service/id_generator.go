// Package service contains small infrastructure adapters that implement
// domain interfaces on top of external libraries.
package service

import (
	"github.com/google/uuid"

	"github.com/alem-hub/solid-go/internal/domain/student"
)

// UUIDGenerator implements student.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// GenerateID implements student.IDGenerator.
func (g *UUIDGenerator) GenerateID() string {
	return uuid.New().String()
}

// Compile-time interface check.
var _ student.IDGenerator = (*UUIDGenerator)(nil)
