// file: internals/features/classrooms/model/assignment_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type AssignmentModel struct {
	AssignmentID          string  `gorm:"type:varchar(64);primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentClassroomID string  `gorm:"type:varchar(64);not null;index;column:assignment_classroom_id" json:"assignment_classroom_id"`
	AssignmentTopicID     *string `gorm:"type:varchar(64);index;column:assignment_topic_id" json:"assignment_topic_id,omitempty"`
	AssignmentTitle       string  `gorm:"type:varchar(255);not null;column:assignment_title" json:"assignment_title"`

	AssignmentDueDate *datatypes.Date `gorm:"type:date;column:assignment_due_date" json:"assignment_due_date,omitempty"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_updated_at" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
