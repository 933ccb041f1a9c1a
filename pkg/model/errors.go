package model

import "errors"

// Sentinel errors for network construction and analysis preconditions.
var (
	// ErrDuplicateEntity is returned when a component ID is added twice.
	ErrDuplicateEntity = errors.New("model: component already exists")

	// ErrUnknownNode is returned when a connection references a node
	// that has not been added to the network.
	ErrUnknownNode = errors.New("model: node does not exist")

	// ErrMissingDistribution is returned when analysis touches a component
	// that carries no failure distribution.
	ErrMissingDistribution = errors.New("model: component has no failure distribution")

	// ErrInvalidParameter is returned for non-positive distribution parameters.
	ErrInvalidParameter = errors.New("model: invalid distribution parameter")

	// ErrNoPaths is returned when an operation requires at least one
	// source-to-sink path and the network has none.
	ErrNoPaths = errors.New("model: no source-sink paths")
)
