// file: internals/features/classrooms/model/sync_log_model.go
package model

import "time"

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// Audit append-only: satu baris per percobaan sync classroom, tidak pernah di-update/hapus.
type SyncLogModel struct {
	SyncLogID          uint       `gorm:"primaryKey;autoIncrement;column:sync_log_id" json:"sync_log_id"`
	SyncLogClassroomID string     `gorm:"type:varchar(64);not null;index;column:sync_log_classroom_id" json:"sync_log_classroom_id"`
	SyncLogTopicID     *string    `gorm:"type:varchar(64);column:sync_log_topic_id" json:"sync_log_topic_id,omitempty"`
	SyncLogStatus      SyncStatus `gorm:"type:varchar(16);not null;column:sync_log_status" json:"sync_log_status"`
	SyncLogMessage     string     `gorm:"type:text;not null;column:sync_log_message" json:"sync_log_message"`

	SyncLogCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:sync_log_created_at" json:"sync_log_created_at"`
}

func (SyncLogModel) TableName() string { return "sync_logs" }
