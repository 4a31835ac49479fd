// file: internals/features/classrooms/model/submission_model.go
package model

import "time"

// PK komposit student×assignment — satu submission per siswa per tugas.
type SubmissionModel struct {
	SubmissionStudentID    string  `gorm:"type:varchar(64);primaryKey;column:submission_student_id" json:"submission_student_id"`
	SubmissionAssignmentID string  `gorm:"type:varchar(64);primaryKey;column:submission_assignment_id" json:"submission_assignment_id"`
	SubmissionTopicID      *string `gorm:"type:varchar(64);index;column:submission_topic_id" json:"submission_topic_id,omitempty"`

	SubmissionSubmittedAt *time.Time `gorm:"type:timestamptz;column:submission_submitted_at" json:"submission_submitted_at,omitempty"`
	SubmissionGraded      bool       `gorm:"not null;default:false;column:submission_graded" json:"submission_graded"`
	SubmissionGrade       *float64   `gorm:"type:numeric(6,2);column:submission_grade" json:"submission_grade,omitempty"`

	SubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
