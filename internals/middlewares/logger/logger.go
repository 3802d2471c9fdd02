package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat tiap request. Zona waktu mengikuti
// APP_TIMEZONE (default WIB — jendela absensi dihitung wall-clock lokal,
// jadi log dan jendela harus sepakat soal jam).
func LoggerMiddleware() fiber.Handler {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[absensiku] ${time} ${ip} ${method} ${path} - ${status} (${latency})\n",
	})
}
