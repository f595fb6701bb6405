// Package services implements the catalogue operations on top of the entity
// store: user registration, people and planet creation, and the favorite
// toggle. Every write runs its existence checks and its insert inside one
// store transaction.
package services

import (
	"unicode/utf8"

	"github.com/juju/errors"
)

// Column limits of the relational schema.
const (
	maxEmailLen     = 120
	maxPlanetName   = 120
	maxPlanetDetail = 50
	maxPersonName   = 40
	maxPersonDetail = 20
)

func checkLen(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return errors.NotValidf("%s of %d characters (max %d)", field, n, max)
	}
	return nil
}
