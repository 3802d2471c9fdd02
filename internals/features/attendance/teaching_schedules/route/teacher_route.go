// file: internals/features/attendance/teaching_schedules/route/teacher_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/teaching_schedules/controller"
)

// TeachingScheduleTeacherRoutes — read-only untuk guru login
func TeachingScheduleTeacherRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, nil)

	grp := user.Group("/teaching-schedules")
	grp.Get("/", h.MySchedules)
	grp.Get("/effective", h.EffectiveSchedule) // ?date=YYYY-MM-DD
}
