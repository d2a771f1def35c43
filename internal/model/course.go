package model

// Course is a course offering.
type Course struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfessorName  string `json:"professor"`
	ScheduleText   string `json:"schedule"`
	EnrolledCount  int    `json:"students"`
	AttendanceRate int    `json:"attendance_rate"`
}
