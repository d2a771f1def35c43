package model

import "encoding/json"

// Student is a student profile as shown on the profile page.
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Birthdate      string `json:"birthdate"`
	AvatarPath     string `json:"avatar"`
	AttendanceRate int    `json:"attendance_rate"`
	ActiveCourses  int    `json:"active_courses"`
	TotalAbsences  int    `json:"total_absences"`
}

// ProfileUpdate is the free-form body of POST /api/user/update. Any JSON
// value is accepted and kept verbatim.
type ProfileUpdate = json.RawMessage
