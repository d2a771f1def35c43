package model

import "strconv"

// AttendanceStatus is the outcome of one attendance observation.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusLate    AttendanceStatus = "late"
	StatusAbsent  AttendanceStatus = "absent"
)

// Layouts used for the Date and Time fields of an AttendanceRecord.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// AttendanceRecord is one student/course/date/status observation.
// StudentID is not checked against the student table, and CourseName is free
// text rather than a Course reference.
type AttendanceRecord struct {
	ID         int              `json:"id"`
	StudentID  string           `json:"student_id"`
	CourseName string           `json:"course"`
	Date       string           `json:"date"`
	Time       string           `json:"time"`
	Status     AttendanceStatus `json:"status"`
}

// DefaultAttendanceLimit applies when the limit parameter is absent.
const DefaultAttendanceLimit = 10

// AttendanceQuery is bound from the query string of GET /api/user/attendance.
// Nil fields were absent from the request; a present but empty limit is
// rejected.
type AttendanceQuery struct {
	StudentID *string `form:"student_id"`
	Limit     *string `form:"limit" binding:"omitnil,number"`
}

// StudentOr returns the requested student, or fallback when none was named.
func (q AttendanceQuery) StudentOr(fallback string) string {
	if q.StudentID == nil {
		return fallback
	}
	return *q.StudentID
}

// MaxRecords returns the requested limit, or DefaultAttendanceLimit.
func (q AttendanceQuery) MaxRecords() (int, error) {
	if q.Limit == nil {
		return DefaultAttendanceLimit, nil
	}
	return strconv.Atoi(*q.Limit)
}
