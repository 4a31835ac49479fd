// file: internals/features/classrooms/dto/sync_log_dto.go
package dto

import (
	"time"

	model "classroomsync_backend/internals/features/classrooms/model"
)

type ListSyncLogsQuery struct {
	ClassroomID *string `query:"classroom_id"`
	Status      *string `query:"status"`
}

type SyncLogResponse struct {
	SyncLogID   uint      `json:"sync_log_id"`
	ClassroomID string    `json:"classroom_id"`
	TopicID     *string   `json:"topic_id,omitempty"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSyncLogModel(m *model.SyncLogModel) SyncLogResponse {
	return SyncLogResponse{
		SyncLogID:   m.SyncLogID,
		ClassroomID: m.SyncLogClassroomID,
		TopicID:     m.SyncLogTopicID,
		Status:      string(m.SyncLogStatus),
		Message:     m.SyncLogMessage,
		CreatedAt:   m.SyncLogCreatedAt,
	}
}

func FromSyncLogModels(ms []model.SyncLogModel) []SyncLogResponse {
	out := make([]SyncLogResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromSyncLogModel(&ms[i]))
	}
	return out
}
