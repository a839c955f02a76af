package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthCheck reports liveness and database connectivity.
func HealthCheck(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "unreachable"
		if db != nil {
			if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
				dbStatus = "connected"
			}
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"database": dbStatus,
			},
		})
	}
}
