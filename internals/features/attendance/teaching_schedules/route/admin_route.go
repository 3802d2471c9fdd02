// file: internals/features/attendance/teaching_schedules/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/teaching_schedules/controller"
)

// TeachingScheduleAdminRoutes — CRUD penuh untuk ADMIN
func TeachingScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/teaching-schedules")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}
