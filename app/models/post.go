package models

import "time"

// Validate checks the post against all field rules, reporting every
// failing field at once.
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets the creation timestamp if unset.
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}
