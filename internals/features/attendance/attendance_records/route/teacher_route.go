// file: internals/features/attendance/attendance_records/route/teacher_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/attendance_records/controller"
	"absensiku_backend/internals/middlewares"
)

// AttendanceTeacherRoutes — eligibility + submit + riwayat untuk guru login
func AttendanceTeacherRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/attendance")
	grp.Get("/eligibility", h.Eligibility)
	grp.Get("/records", h.MyRecords)
	grp.Post("/records", middlewares.AttendanceRateLimiter(), h.Submit)
}
