package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Query errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoProfile          = errors.New("no student profile available")
)

// AuditSink receives profile updates for the audit trail.
type AuditSink interface {
	Enqueue(ctx context.Context, entry *model.ProfileUpdateAudit) error
}

// QueryService answers every API read against the in-memory DataStore.
// Apart from the audit trail it has no side effects.
type QueryService struct {
	store *repository.DataStore
	audit AuditSink
	log   zerolog.Logger
	now   func() time.Time
}

// NewQueryService creates a new QueryService. audit may be nil, in which case
// profile updates are only logged.
func NewQueryService(store *repository.DataStore, audit AuditSink, log zerolog.Logger) *QueryService {
	return &QueryService{
		store: store,
		audit: audit,
		log:   log.With().Str("component", "query_service").Logger(),
		now:   time.Now,
	}
}

// Authenticate checks a username/password pair against the fixture accounts.
func (s *QueryService) Authenticate(ctx context.Context, username, password string) (model.UserSummary, error) {
	user, err := s.store.UserByUsername(username)
	if err != nil {
		return model.UserSummary{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.UserSummary{}, ErrInvalidCredentials
	}
	return user.Summary(), nil
}

// GetProfile returns the profile of the demo student. The caller is not
// taken into account.
func (s *QueryService) GetProfile(ctx context.Context) (model.Student, error) {
	students := s.store.Students()
	if len(students) == 0 {
		return model.Student{}, ErrNoProfile
	}
	return students[0], nil
}

// GetAttendance returns at most limit records for studentID in store order
// (newest first). It never returns nil.
func (s *QueryService) GetAttendance(ctx context.Context, studentID string, limit int) []model.AttendanceRecord {
	all := s.store.Attendance()
	records := make([]model.AttendanceRecord, 0, min(max(limit, 0), len(all)))
	if limit <= 0 {
		return records
	}
	for _, r := range all {
		if r.StudentID != studentID {
			continue
		}
		records = append(records, r)
		if len(records) == limit {
			break
		}
	}
	return records
}

// UpdateProfile accepts any update and reports success without changing the
// stored profile. The payload is logged and, when configured, queued for audit.
func (s *QueryService) UpdateProfile(ctx context.Context, requestID string, update model.ProfileUpdate) {
	s.log.Info().
		Str("request_id", requestID).
		Interface("payload", update).
		Msg("Profile update received")

	if s.audit == nil {
		return
	}

	entry := &model.ProfileUpdateAudit{
		ID:         uuid.New(),
		RequestID:  requestID,
		Payload:    update,
		ReceivedAt: s.now().UTC(),
	}
	if err := s.audit.Enqueue(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("request_id", requestID).Msg("Failed to queue profile update audit")
	}
}

// Search matches q case-insensitively against student name and email and
// course name and professor. An empty q matches everything. Students come
// before courses. It never returns nil.
func (s *QueryService) Search(ctx context.Context, q string, scope model.SearchScope) []model.SearchResult {
	needle := strings.ToLower(q)
	results := make([]model.SearchResult, 0)

	if scope == model.SearchAll || scope == model.SearchStudents {
		for _, st := range s.store.Students() {
			if containsFold(st.Name, needle) || containsFold(st.Email, needle) {
				results = append(results, model.SearchResult{Type: model.HitStudent, Data: st})
			}
		}
	}

	if scope == model.SearchAll || scope == model.SearchCourses {
		for _, c := range s.store.Courses() {
			if containsFold(c.Name, needle) || containsFold(c.ProfessorName, needle) {
				results = append(results, model.SearchResult{Type: model.HitCourse, Data: c})
			}
		}
	}

	return results
}

// ListNotifications returns the static notification list.
func (s *QueryService) ListNotifications(ctx context.Context) []model.Notification {
	return s.store.Notifications()
}

// containsFold reports whether the lowercased needle occurs in haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
