package models

import "time"

// RegistrationDB represents an enrollment record in the database.
// The (username, course_id) pair is unique; registrations are never
// updated or deleted (there is no drop-course flow).
type RegistrationDB struct {
	Username  string    `json:"username" db:"username"`
	CourseID  string    `json:"course_id" db:"course_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Enrollment is the event published to Kafka after a successful
// course registration.
type Enrollment struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Username  string `json:"username"`   // Who registered
	CourseID  string `json:"course_id"`  // Which course
	SeatsLeft int    `json:"seats_left"` // Seats remaining after the registration
	Timestamp int64  `json:"timestamp"`  // Unix timestamp
}
