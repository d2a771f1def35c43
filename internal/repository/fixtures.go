package repository

import (
	"time"

	"github.com/stemsi/asistnet-backend/internal/model"
)

type fixtureUser struct {
	username string
	password string
	role     model.Role
	name     string
}

var fixtureUsers = []fixtureUser{
	{username: "admin", password: "admin123", role: model.RoleAdmin, name: "Administrador"},
	{username: "estudiante1", password: "student123", role: model.RoleStudent, name: "Juan Pérez"},
	{username: "profesor1", password: "teacher123", role: model.RoleTeacher, name: "Ana Martínez"},
}

var fixtureStudents = []model.Student{
	{
		ID:             "EST2024001",
		Name:           "Juan Pérez",
		Email:          "juan@email.com",
		Phone:          "+1234567890",
		Birthdate:      "2000-05-15",
		AvatarPath:     "/static/img/avatars/student1.jpg",
		AttendanceRate: 92,
		ActiveCourses:  3,
		TotalAbsences:  2,
	},
}

var fixtureCourses = []model.Course{
	{
		ID:             "MATH101",
		Name:           "Matemáticas Avanzadas",
		ProfessorName:  "Carlos Rodríguez",
		ScheduleText:   "Lun y Mié • 08:00-10:00",
		EnrolledCount:  25,
		AttendanceRate: 95,
	},
}

var fixtureNotifications = []model.Notification{
	{
		ID:           1,
		Kind:         model.NotificationAlert,
		Title:        "⚠️ Inasistencia consecutiva",
		Message:      "Juan Pérez tiene 3 inasistencias consecutivas en Matemáticas",
		RelativeTime: "Hace 2 horas",
		Read:         false,
	},
	{
		ID:           2,
		Kind:         model.NotificationSuccess,
		Title:        "✅ Asistencia registrada",
		Message:      "Asistencia masiva del curso de Programación registrada correctamente",
		RelativeTime: "Hace 5 horas",
		Read:         true,
	},
}

var (
	attendanceCourses = []string{"Matemáticas", "Programación", "Inglés"}
	// Class start times as offsets from midnight.
	attendanceSlots = []time.Duration{
		8 * time.Hour,
		9*time.Hour + 30*time.Minute,
		10 * time.Hour,
	}

	// Five presents to one late and one absent.
	attendanceStatusBag = []model.AttendanceStatus{
		model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusPresent, model.StatusPresent,
		model.StatusLate, model.StatusAbsent,
	}
)
