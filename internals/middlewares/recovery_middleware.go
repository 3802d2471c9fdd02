package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic supaya satu request yang meledak
// tidak menjatuhkan proses. Stack trace ikut dicetak kecuali dimatikan
// lewat DISABLE_STACK_TRACE=1 (produksi).
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: os.Getenv("DISABLE_STACK_TRACE") != "1",
	})
}
