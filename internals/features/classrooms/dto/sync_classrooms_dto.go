// file: internals/features/classrooms/dto/sync_classrooms_dto.go
package dto

import "time"

/* =========================
   Request
========================= */

type SyncClassroomsRequest struct {
	ClassroomIDs []string `json:"classroom_ids" validate:"required,min=1,dive,required"`
	TopicID      *string  `json:"topic_id,omitempty" validate:"omitempty,min=1"`
}

/* =========================
   Snapshot (hasil normalisasi satu classroom dari sumber eksternal)
========================= */

type SnapshotStudent struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type SnapshotAssignment struct {
	AssignmentID string     `json:"assignment_id"`
	Title        string     `json:"title"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	TopicID      *string    `json:"topic_id,omitempty"`
}

type SnapshotSubmission struct {
	StudentID    string     `json:"student_id"`
	AssignmentID string     `json:"assignment_id"`
	TopicID      *string    `json:"topic_id,omitempty"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	Graded       bool       `json:"graded"`
	Grade        *float64   `json:"grade,omitempty"`
}

type SnapshotTopic struct {
	TopicID string `json:"topic_id"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
}

type ClassroomSnapshot struct {
	ClassroomID string               `json:"classroom_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Students    []SnapshotStudent    `json:"students"`
	Assignments []SnapshotAssignment `json:"assignments"`
	Submissions []SnapshotSubmission `json:"submissions"`
	Topics      []SnapshotTopic      `json:"topics"`
}

/* =========================
   Response
========================= */

type TopicResult struct {
	TopicID           string `json:"topic_id"`
	TopicName         string `json:"topic_name"`
	TotalSubmitted    int    `json:"total_submitted"`
	TotalNotSubmitted int    `json:"total_not_submitted"`
	TotalNotGraded    int    `json:"total_not_graded"`
}

type SyncResult struct {
	ClassroomID       string        `json:"classroom_id"`
	TotalSubmitted    int           `json:"total_submitted"`
	TotalNotSubmitted int           `json:"total_not_submitted"`
	TotalNotGraded    int           `json:"total_not_graded"`
	CurrentLesson     string        `json:"current_lesson"`
	TopicResults      []TopicResult `json:"topic_results"`
}
