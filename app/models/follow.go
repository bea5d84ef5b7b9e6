package models

import "time"

// Validate checks the follow edge against all field rules.
func (f *Follow) Validate() error {
	return validate.Struct(f)
}

// BeforeCreate sets the creation timestamp if unset.
func (f *Follow) BeforeCreate() {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
}
