// file: internals/features/attendance/schedule_swaps/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "absensiku_backend/internals/features/attendance/schedule_swaps/controller"
)

// SwapAdminRoutes — monitoring semua permintaan tukar jadwal
func SwapAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, nil)

	grp := admin.Group("/swaps")
	grp.Get("/", h.List)
}
