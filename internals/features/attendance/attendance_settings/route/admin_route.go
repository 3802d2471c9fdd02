// file: internals/features/attendance/attendance_settings/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/attendance_settings/controller"
)

// AttendanceSettingAdminRoutes — pengaturan toleransi + geofence kampus
func AttendanceSettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/attendance-settings")
	grp.Get("/", h.GetSetting)
	grp.Put("/", h.UpdateSetting)

	loc := admin.Group("/campus-locations")
	loc.Get("/", h.ListCampusLocations)
	loc.Put("/", h.UpsertCampusLocation)
	loc.Delete("/:id", h.DeleteCampusLocation)
}
