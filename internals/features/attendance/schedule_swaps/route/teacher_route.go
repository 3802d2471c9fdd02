// file: internals/features/attendance/schedule_swaps/route/teacher_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/schedule_swaps/controller"
)

// SwapTeacherRoutes — pengajuan & respon tukar jadwal untuk guru login
func SwapTeacherRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/swaps")
	grp.Get("/outgoing", h.Outgoing)
	grp.Get("/incoming", h.Incoming)
	grp.Post("/", h.Create)
	grp.Post("/:id/respond", h.Respond)
	grp.Post("/:id/cancel", h.Cancel)
}
