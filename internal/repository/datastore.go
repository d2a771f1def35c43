package repository

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/stemsi/asistnet-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserNotFound is returned when a username has no account.
var ErrUserNotFound = errors.New("user not found")

// AttendanceDays is how many days of history are generated at startup.
const AttendanceDays = 30

// Options controls how a DataStore is built.
type Options struct {
	// Rand drives attendance generation. Nil uses a time-seeded source.
	Rand *rand.Rand
	// Now anchors the generated history. Nil uses time.Now.
	Now func() time.Time
	// BcryptCost is used to hash fixture passwords. Values outside the
	// bcrypt range fall back to bcrypt.MinCost.
	BcryptCost int
}

// NewSeededRand returns a deterministic source for seed, or a time-seeded
// one when seed is zero.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DataStore holds the in-memory mock dataset. It is populated once by
// NewDataStore and only read afterwards, so it is safe for concurrent use.
type DataStore struct {
	users      map[string]model.User
	students   []model.Student
	courses    []model.Course
	attendance []model.AttendanceRecord
}

// NewDataStore populates the fixture tables and generates the attendance history.
func NewDataStore(opts Options) (*DataStore, error) {
	if opts.Rand == nil {
		opts.Rand = NewSeededRand(0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BcryptCost < bcrypt.MinCost || opts.BcryptCost > bcrypt.MaxCost {
		opts.BcryptCost = bcrypt.MinCost
	}

	users := make(map[string]model.User, len(fixtureUsers))
	for _, fu := range fixtureUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(fu.password), opts.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", fu.username, err)
		}
		users[fu.username] = model.User{
			Username:     fu.username,
			PasswordHash: string(hash),
			Role:         fu.role,
			Name:         fu.name,
		}
	}

	return &DataStore{
		users:      users,
		students:   append([]model.Student(nil), fixtureStudents...),
		courses:    append([]model.Course(nil), fixtureCourses...),
		attendance: GenerateAttendance(opts.Rand, opts.Now()),
	}, nil
}

// GenerateAttendance builds one record per day for AttendanceDays days,
// starting at today and going backwards. Course, time slot and status are
// drawn independently from their fixed value sets.
func GenerateAttendance(rng *rand.Rand, today time.Time) []model.AttendanceRecord {
	records := make([]model.AttendanceRecord, 0, AttendanceDays)
	for i := 0; i < AttendanceDays; i++ {
		day := today.AddDate(0, 0, -i)
		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		course := attendanceCourses[rng.IntN(len(attendanceCourses))]
		slot := attendanceSlots[rng.IntN(len(attendanceSlots))]
		records = append(records, model.AttendanceRecord{
			ID:         i + 1,
			StudentID:  fixtureStudents[0].ID,
			CourseName: course,
			Date:       day.Format(model.DateLayout),
			Time:       midnight.Add(slot).Format(model.TimeLayout),
			Status:     attendanceStatusBag[rng.IntN(len(attendanceStatusBag))],
		})
	}
	return records
}

// UserByUsername looks up an account by its unique username.
func (s *DataStore) UserByUsername(username string) (model.User, error) {
	u, ok := s.users[username]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// Students returns a copy of the student table in fixture order.
func (s *DataStore) Students() []model.Student {
	return append([]model.Student(nil), s.students...)
}

// Courses returns a copy of the course table in fixture order.
func (s *DataStore) Courses() []model.Course {
	return append([]model.Course(nil), s.courses...)
}

// Attendance returns a copy of all records, newest first.
func (s *DataStore) Attendance() []model.AttendanceRecord {
	return append([]model.AttendanceRecord(nil), s.attendance...)
}

// Notifications returns the static notification list.
func (s *DataStore) Notifications() []model.Notification {
	return append([]model.Notification(nil), fixtureNotifications...)
}
