package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
	"github.com/cantord3/info465teamproject/internal/repositories"
)

// Registration outcomes. All are expected, user-recoverable conditions;
// anything else bubbling out of Register is a storage failure.
var (
	ErrCourseNotActive     = errors.New("course not active")
	ErrNoSeats             = errors.New("no seats available")
	ErrPrerequisitesNotMet = errors.New("prerequisites not met")
	ErrAlreadyRegistered   = errors.New("already registered")
)

// CourseReader defines catalog read operations used during registration.
type CourseReader interface {
	GetActive(ctx context.Context, courseID string) (*models.CourseDB, error)
}

// CourseWriter defines the seat mutation used during registration.
type CourseWriter interface {
	DecrementSeats(ctx context.Context, courseID string) (int, error)
}

// PrerequisiteReader lists the prerequisite edges of a course.
type PrerequisiteReader interface {
	ListByCourseID(ctx context.Context, courseID string) ([]string, error)
}

// RegistrationReader defines ledger read operations.
type RegistrationReader interface {
	ListCourseIDs(ctx context.Context, username string) ([]string, error)
}

// RegistrationWriter defines the ledger insert.
type RegistrationWriter interface {
	Add(ctx context.Context, username, courseID string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RegistrationService orchestrates a course registration: activity
// check, seat availability, prerequisite validation, ledger insert,
// and seat decrement. The caller is expected to run Register inside a
// single transaction so a failure leaves no partial writes.
type RegistrationService struct {
	courses       CourseReader
	seats         CourseWriter
	prereqs       PrerequisiteReader
	registrations RegistrationReader
	ledger        RegistrationWriter
	kafkaWriter   KafkaWriter
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	courses CourseReader,
	seats CourseWriter,
	prereqs PrerequisiteReader,
	registrations RegistrationReader,
	ledger RegistrationWriter,
	kafkaWriter KafkaWriter,
) *RegistrationService {
	return &RegistrationService{
		courses:       courses,
		seats:         seats,
		prereqs:       prereqs,
		registrations: registrations,
		ledger:        ledger,
		kafkaWriter:   kafkaWriter,
	}
}

// Register enrolls username into courseID, or returns one of the
// outcome errors. The check order is a contract of the user-facing
// messaging and must not be rearranged: activity, seats,
// prerequisites, duplicate registration.
func (s *RegistrationService) Register(ctx context.Context, username, courseID string) error {
	course, err := s.courses.GetActive(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to look up course", "course_id", courseID, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotActive
	}

	if course.Seats <= 0 {
		return ErrNoSeats
	}

	ok, err := s.checkPrerequisites(ctx, username, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPrerequisitesNotMet
	}

	if err := s.ledger.Add(ctx, username, courseID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyRegistered) {
			return ErrAlreadyRegistered
		}
		logger.Log.Errorw("failed to insert registration", "username", username, "course_id", courseID, "error", err)
		return err
	}

	seatsLeft, err := s.seats.DecrementSeats(ctx, courseID)
	if err != nil {
		// The seat check above read a positive count, so no rows here
		// means a concurrent registration took the last seat. The
		// surrounding transaction rolls the ledger insert back.
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoSeats
		}
		logger.Log.Errorw("failed to decrement seats", "course_id", courseID, "error", err)
		return err
	}

	s.publishEnrollment(ctx, models.Enrollment{
		EventID:   uuid.NewString(),
		Username:  username,
		CourseID:  courseID,
		SeatsLeft: seatsLeft,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// checkPrerequisites reports whether every prerequisite of courseID
// appears among the user's current registrations. A course with no
// prerequisites always passes. Prerequisite means "currently
// registered", not "completed", and edges are not validated acyclic;
// a cycle would make the affected courses permanently unregisterable.
func (s *RegistrationService) checkPrerequisites(ctx context.Context, username, courseID string) (bool, error) {
	prereqs, err := s.prereqs.ListByCourseID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to list prerequisites", "course_id", courseID, "error", err)
		return false, err
	}
	if len(prereqs) == 0 {
		return true, nil
	}

	registered, err := s.registrations.ListCourseIDs(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list registrations", "username", username, "error", err)
		return false, err
	}

	registeredSet := make(map[string]struct{}, len(registered))
	for _, id := range registered {
		registeredSet[id] = struct{}{}
	}
	for _, prereq := range prereqs {
		if _, ok := registeredSet[prereq]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// publishEnrollment publishes an enrollment event to Kafka.
func (s *RegistrationService) publishEnrollment(ctx context.Context, event models.Enrollment) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal enrollment for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish enrollment to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Enrollment published to Kafka", "event_id", event.EventID, "course_id", event.CourseID)
	}
}
