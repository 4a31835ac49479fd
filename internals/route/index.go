// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoutes "classroomsync_backend/internals/features/classrooms/route"
	authMiddleware "classroomsync_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthJWT())

	log.Println("[INFO] Setting up ClassroomRoutes...")
	classroomRoutes.ClassroomAdminRoutes(admin, db)
}
