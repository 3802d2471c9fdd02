// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordRoutes "absensiku_backend/internals/features/attendance/attendance_records/route"
	settingRoutes "absensiku_backend/internals/features/attendance/attendance_settings/route"
	swapRoutes "absensiku_backend/internals/features/attendance/schedule_swaps/route"
	scheduleRoutes "absensiku_backend/internals/features/attendance/teaching_schedules/route"
)

// AdminRoutes — semua fitur untuk admin (/api/a)
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	scheduleRoutes.TeachingScheduleAdminRoutes(admin, db)
	settingRoutes.AttendanceSettingAdminRoutes(admin, db)
	recordRoutes.AttendanceAdminRoutes(admin, db)
	swapRoutes.SwapAdminRoutes(admin, db)
}
