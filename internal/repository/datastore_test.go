package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/stemsi/asistnet-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var testToday = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, seed uint64) *DataStore {
	t.Helper()
	s, err := NewDataStore(Options{
		Rand:       NewSeededRand(seed),
		Now:        func() time.Time { return testToday },
		BcryptCost: bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("NewDataStore: %v", err)
	}
	return s
}

func TestAttendanceIsThirtyContiguousDaysEndingToday(t *testing.T) {
	s := newTestStore(t, 1)
	records := s.Attendance()

	if len(records) != AttendanceDays {
		t.Fatalf("expected %d records, got %d", AttendanceDays, len(records))
	}

	for i, r := range records {
		want := testToday.AddDate(0, 0, -i).Format(model.DateLayout)
		if r.Date != want {
			t.Errorf("record %d: date %s, want %s", i, r.Date, want)
		}
		if r.ID != i+1 {
			t.Errorf("record %d: id %d, want %d", i, r.ID, i+1)
		}
		if r.StudentID != "EST2024001" {
			t.Errorf("record %d: student %q", i, r.StudentID)
		}
	}
}

func TestAttendanceFieldsComeFromFixedSets(t *testing.T) {
	s := newTestStore(t, 2)

	courses := map[string]bool{"Matemáticas": true, "Programación": true, "Inglés": true}
	slots := map[string]bool{"08:00": true, "09:30": true, "10:00": true}
	statuses := map[model.AttendanceStatus]bool{
		model.StatusPresent: true, model.StatusLate: true, model.StatusAbsent: true,
	}

	for _, r := range s.Attendance() {
		if !courses[r.CourseName] {
			t.Errorf("unexpected course %q", r.CourseName)
		}
		if !slots[r.Time] {
			t.Errorf("unexpected time %q", r.Time)
		}
		if !statuses[r.Status] {
			t.Errorf("unexpected status %q", r.Status)
		}
	}
}

func TestSameSeedGeneratesSameHistory(t *testing.T) {
	a := newTestStore(t, 7).Attendance()
	b := newTestStore(t, 7).Attendance()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different attendance")
	}
}

func TestStatusDistributionFollowsBag(t *testing.T) {
	rng := NewSeededRand(99)
	counts := map[model.AttendanceStatus]int{}
	total := 0
	for i := 0; i < 300; i++ {
		for _, r := range GenerateAttendance(rng, testToday) {
			counts[r.Status]++
			total++
		}
	}

	present := float64(counts[model.StatusPresent]) / float64(total)
	late := float64(counts[model.StatusLate]) / float64(total)
	absent := float64(counts[model.StatusAbsent]) / float64(total)

	if present < 0.68 || present > 0.75 {
		t.Errorf("present share %.3f, want about 5/7", present)
	}
	if late < 0.12 || late > 0.17 {
		t.Errorf("late share %.3f, want about 1/7", late)
	}
	if absent < 0.12 || absent > 0.17 {
		t.Errorf("absent share %.3f, want about 1/7", absent)
	}
}

func TestUserByUsername(t *testing.T) {
	s := newTestStore(t, 1)

	u, err := s.UserByUsername("profesor1")
	if err != nil {
		t.Fatalf("UserByUsername: %v", err)
	}
	if u.Role != model.RoleTeacher || u.Name != "Ana Martínez" {
		t.Errorf("unexpected user %+v", u)
	}
	if u.PasswordHash == "teacher123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("teacher123")); err != nil {
		t.Errorf("hash does not match fixture password: %v", err)
	}

	if _, err := s.UserByUsername("nobody"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t, 1)

	students := s.Students()
	students[0].Name = "changed"
	if s.Students()[0].Name != "Juan Pérez" {
		t.Error("mutating Students() result changed the store")
	}

	records := s.Attendance()
	records[0].Status = "bogus"
	if s.Attendance()[0].Status == "bogus" {
		t.Error("mutating Attendance() result changed the store")
	}

	notes := s.Notifications()
	notes[0].Read = true
	if s.Notifications()[0].Read {
		t.Error("mutating Notifications() result changed the fixtures")
	}
}

func TestInvalidBcryptCostFallsBack(t *testing.T) {
	if _, err := NewDataStore(Options{BcryptCost: 99, Rand: NewSeededRand(1)}); err != nil {
		t.Fatalf("NewDataStore with out-of-range cost: %v", err)
	}
}
