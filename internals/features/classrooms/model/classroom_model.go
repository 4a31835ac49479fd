// file: internals/features/classrooms/model/classroom_model.go
package model

import "time"

type ClassroomModel struct {
	ClassroomID          string `gorm:"type:varchar(64);primaryKey;column:classroom_id" json:"classroom_id"`
	ClassroomName        string `gorm:"type:varchar(255);not null;column:classroom_name" json:"classroom_name"`
	ClassroomDescription string `gorm:"type:text;column:classroom_description" json:"classroom_description"`

	ClassroomCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:classroom_updated_at" json:"classroom_updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
