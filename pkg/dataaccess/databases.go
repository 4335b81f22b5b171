package dataaccess

import (
	"errors"
)

const (
	// DefaultDatabase is the default Mongo database name.
	DefaultDatabase = "orderbot"

	guildsCollection  = "guilds"
	ticketsCollection = "tickets"
)

var (
	// ErrNotFound is returned when a guild or ticket record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when creating a record that already exists.
	ErrAlreadyExists = errors.New("record already exists")
)
