// file: internals/features/attendance/attendance_records/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/attendance_records/controller"
)

// AttendanceAdminRoutes — monitoring + auto-complete absen pulang
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/attendance-records")
	grp.Get("/", h.List)
	grp.Post("/auto-complete", h.AutoComplete)
}
