// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports). Implementations live under
// internal/adapters/driven.
package driven
