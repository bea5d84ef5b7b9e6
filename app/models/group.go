package models

import "time"

// Validate checks the group against all field rules.
func (g *Group) Validate() error {
	return validate.Struct(g)
}

// BeforeCreate sets the creation timestamp if unset.
func (g *Group) BeforeCreate() {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
}
