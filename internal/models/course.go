package models

import "time"

// CourseDB represents a course record in the database
type CourseDB struct {
	CourseID  string    `json:"course_id" db:"course_id"`   // Primary key, e.g. "CS101"
	Name      string    `json:"name" db:"name"`             // Human-readable course name
	Seats     int       `json:"seats" db:"seats"`           // Remaining capacity, never negative
	Active    bool      `json:"active" db:"active"`         // Inactive courses are hidden and unregisterable
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// PrerequisiteDB represents a directed prerequisite edge:
// registering for CourseID requires an existing registration for PrereqID.
type PrerequisiteDB struct {
	CourseID string `json:"course_id" db:"course_id"`
	PrereqID string `json:"prereq_id" db:"prereq_id"`
}
