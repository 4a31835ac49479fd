// file: internals/features/classrooms/model/student_model.go
package model

import "time"

type StudentModel struct {
	StudentID          string `gorm:"type:varchar(64);primaryKey;column:student_id" json:"student_id"`
	StudentClassroomID string `gorm:"type:varchar(64);not null;index;column:student_classroom_id" json:"student_classroom_id"`
	StudentName        string `gorm:"type:varchar(255);not null;column:student_name" json:"student_name"`
	StudentEmail       string `gorm:"type:varchar(255);column:student_email" json:"student_email"`

	StudentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
