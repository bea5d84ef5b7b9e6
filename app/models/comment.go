package models

import "time"

// Validate checks the comment against all field rules, reporting every
// failing field at once.
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets the creation timestamp if unset.
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
