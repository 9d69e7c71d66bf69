// Package repository is the persistence gateway: every SQL access in the
// application goes through one of these types.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers should test
// for it with errors.Is instead of depending on gorm's sentinel.
var ErrNotFound = errors.New("record not found")
