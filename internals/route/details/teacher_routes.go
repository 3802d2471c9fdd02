// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordRoutes "absensiku_backend/internals/features/attendance/attendance_records/route"
	swapRoutes "absensiku_backend/internals/features/attendance/schedule_swaps/route"
	scheduleRoutes "absensiku_backend/internals/features/attendance/teaching_schedules/route"
)

// TeacherRoutes — semua fitur untuk guru login (/api/u)
func TeacherRoutes(user fiber.Router, db *gorm.DB) {
	scheduleRoutes.TeachingScheduleTeacherRoutes(user, db)
	recordRoutes.AttendanceTeacherRoutes(user, db)
	swapRoutes.SwapTeacherRoutes(user, db)
}
