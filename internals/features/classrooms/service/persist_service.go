// file: internals/features/classrooms/service/persist_service.go
package service

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	model "classroomsync_backend/internals/features/classrooms/model"
)

// PersistService menulis snapshot ke store relasional:
// classroom → topics → students → assignments → submissions, urut, tanpa
// transaksi lintas entity. Insert pertama yang gagal menghentikan sisa tulis;
// baris yang sudah masuk dibiarkan (tidak ada rollback otomatis).
type PersistService struct {
	DB *gorm.DB
}

func NewPersistService(db *gorm.DB) *PersistService {
	return &PersistService{DB: db}
}

func (s *PersistService) SaveSnapshot(ctx context.Context, snap *dto.ClassroomSnapshot) error {
	db := s.DB.WithContext(ctx)

	// Upsert by PK: sync ulang classroom yang sama menimpa baris lama, bukan duplikat.
	upsert := clause.OnConflict{UpdateAll: true}

	classroom := model.ClassroomModel{
		ClassroomID:          snap.ClassroomID,
		ClassroomName:        snap.Name,
		ClassroomDescription: snap.Description,
	}
	if err := db.Clauses(upsert).Create(&classroom).Error; err != nil {
		return err
	}

	for _, t := range snap.Topics {
		topic := model.TopicModel{
			TopicID:          t.TopicID,
			TopicClassroomID: snap.ClassroomID,
			TopicName:        t.Name,
			TopicPosition:    t.Order,
		}
		if err := db.Clauses(upsert).Create(&topic).Error; err != nil {
			return err
		}
	}

	for _, st := range snap.Students {
		student := model.StudentModel{
			StudentID:          st.StudentID,
			StudentClassroomID: snap.ClassroomID,
			StudentName:        st.Name,
			StudentEmail:       st.Email,
		}
		if err := db.Clauses(upsert).Create(&student).Error; err != nil {
			return err
		}
	}

	for _, a := range snap.Assignments {
		// topic_id dari sumber dipercaya apa adanya — tanpa pre-check referensial
		assignment := model.AssignmentModel{
			AssignmentID:          a.AssignmentID,
			AssignmentClassroomID: snap.ClassroomID,
			AssignmentTopicID:     a.TopicID,
			AssignmentTitle:       a.Title,
		}
		if a.DueDate != nil {
			due := datatypes.Date(*a.DueDate)
			assignment.AssignmentDueDate = &due
		}
		if err := db.Clauses(upsert).Create(&assignment).Error; err != nil {
			return err
		}
	}

	submissionUpsert := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "submission_student_id"},
			{Name: "submission_assignment_id"},
		},
		UpdateAll: true,
	}
	for _, sub := range snap.Submissions {
		submission := model.SubmissionModel{
			SubmissionStudentID:    sub.StudentID,
			SubmissionAssignmentID: sub.AssignmentID,
			SubmissionTopicID:      sub.TopicID,
			SubmissionSubmittedAt:  sub.SubmittedAt,
			SubmissionGraded:       sub.Graded,
			SubmissionGrade:        sub.Grade,
		}
		if err := db.Clauses(submissionUpsert).Create(&submission).Error; err != nil {
			return err
		}
	}

	return nil
}

// AppendSyncLog: audit append-only, satu baris per percobaan sync.
func (s *PersistService) AppendSyncLog(ctx context.Context, classroomID string, topicID *string, status model.SyncStatus, message string) error {
	entry := model.SyncLogModel{
		SyncLogClassroomID: classroomID,
		SyncLogTopicID:     topicID,
		SyncLogStatus:      status,
		SyncLogMessage:     message,
	}
	return s.DB.WithContext(ctx).Create(&entry).Error
}
