// Copyright (c) 2026 Advora. All rights reserved.

/*
Package advocate implements the directory of healthcare support professionals.

It owns the Advocate aggregate (core fields, specialty associations, resolved
location) and the listing pipeline behind GET /advocates: parameter parsing,
predicate filtering, multi-level sorting, and offset/cursor pagination.
*/
package advocate

import "time"

// Advocate is the principal directory entity. Specialty names and the
// location fields are flattened onto the projection so list consumers never
// chase relations.
type Advocate struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Degree            string    `json:"degree"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	PhoneNumber       int64     `json:"phoneNumber"`
	Specialties       []string  `json:"specialties"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Specialty is a named capability an advocate can be associated with.
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Global field names for validation and query parsing
const (
	FieldID                = "id"
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldDegree            = "degree"
	FieldYearsOfExperience = "yearsOfExperience"
	FieldExperience        = "experience" // filter alias for yearsOfExperience
	FieldPhoneNumber       = "phoneNumber"
	FieldSpecialty         = "specialty"
	FieldCity              = "city"
	FieldCreatedAt         = "createdAt"
)

// FieldValue resolves a queryable field to its value on one advocate. It
// backs both cursor-row location and cursor minting, so every sortable and
// cursor-eligible field must be covered here.
func FieldValue(a *Advocate, field string) (any, bool) {
	switch field {
	case FieldID:
		return a.ID, true
	case FieldFirstName:
		return a.FirstName, true
	case FieldLastName:
		return a.LastName, true
	case FieldDegree:
		return a.Degree, true
	case FieldYearsOfExperience, FieldExperience:
		return a.YearsOfExperience, true
	case FieldPhoneNumber:
		return a.PhoneNumber, true
	case FieldCity:
		return a.City, true
	case FieldCreatedAt:
		return a.CreatedAt, true
	}
	return nil, false
}
