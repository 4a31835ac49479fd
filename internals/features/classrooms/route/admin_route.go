// file: internals/features/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomController "classroomsync_backend/internals/features/classrooms/controller"
	middlewares "classroomsync_backend/internals/middlewares"
)

// Base: /api/a/classrooms
func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	syncCtrl := classroomController.NewSyncController(db)
	logCtrl := classroomController.NewSyncLogController(db)

	g := r.Group("/classrooms")
	g.Post("/sync", middlewares.SyncRateLimiter(), syncCtrl.SyncClassrooms) // sync batch classroom
	g.Get("/sync-logs", logCtrl.List)                                       // audit percobaan sync
}
