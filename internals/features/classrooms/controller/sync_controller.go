// file: internals/features/classrooms/controller/sync_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroomsync_backend/internals/configs"
	dto "classroomsync_backend/internals/features/classrooms/dto"
	service "classroomsync_backend/internals/features/classrooms/service"
	helper "classroomsync_backend/internals/helpers"
)

// ClassroomSyncer: kontrak orchestrator yang dipakai controller (dipenuhi service.SyncService).
type ClassroomSyncer interface {
	SyncClassrooms(ctx context.Context, req dto.SyncClassroomsRequest) ([]dto.SyncResult, error)
}

type SyncController struct {
	Syncer    ClassroomSyncer
	Validator *validator.Validate
}

func NewSyncController(db *gorm.DB) *SyncController {
	source := service.NewGoogleClassroomSource(
		context.Background(),
		configs.GoogleClientID,
		configs.GoogleClientSecret,
		configs.GoogleRefreshToken,
	)
	syncService := service.NewSyncService(source, service.NewPersistService(db))
	syncService.ContinueOnError = configs.SyncContinueOnError

	return &SyncController{
		Syncer:    syncService,
		Validator: validator.New(),
	}
}

/* =========================
   Handlers
========================= */

// POST /classrooms/sync
func (ctrl *SyncController) SyncClassrooms(c *fiber.Ctx) error {
	var body dto.SyncClassroomsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctrl.Validator.Struct(&body); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fieldErrors := make(map[string][]string, len(ve))
			for _, fe := range ve {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
			return helper.JsonValidationError(c, fieldErrors)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	results, err := ctrl.Syncer.SyncClassrooms(c.Context(), body)
	if err != nil {
		var credErr *service.CredentialError
		if errors.As(err, &credErr) {
			return helper.JsonError(c, fiber.StatusUnauthorized, credErr.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Sync completed for multiple classrooms", results)
}
