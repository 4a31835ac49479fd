// file: internals/features/classrooms/controller/sync_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	model "classroomsync_backend/internals/features/classrooms/model"
	helper "classroomsync_backend/internals/helpers"
)

type SyncLogController struct {
	DB *gorm.DB
}

func NewSyncLogController(db *gorm.DB) *SyncLogController {
	return &SyncLogController{DB: db}
}

// GET /classrooms/sync-logs?classroom_id=&status=&page=&per_page=
func (ctrl *SyncLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.SyncLogModel{})

	if classroomID := strings.TrimSpace(c.Query("classroom_id")); classroomID != "" {
		q = q.Where("sync_log_classroom_id = ?", classroomID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if status != string(model.SyncStatusSuccess) && status != string(model.SyncStatusFailed) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status harus success atau failed")
		}
		q = q.Where("sync_log_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var logs []model.SyncLogModel
	if err := q.
		Order("sync_log_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	data := dto.FromSyncLogModels(logs)
	return helper.JsonList(c, "ok", data, helper.BuildPagination(paging, total, len(data)))
}
