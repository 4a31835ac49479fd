// file: internals/features/classrooms/service/sync_service.go
package service

import (
	"context"
	"fmt"
	"log"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	model "classroomsync_backend/internals/features/classrooms/model"
)

// SnapshotWriter: sisi tulis yang dibutuhkan orchestrator (diimplement PersistService).
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, snap *dto.ClassroomSnapshot) error
	AppendSyncLog(ctx context.Context, classroomID string, topicID *string, status model.SyncStatus, message string) error
}

// SyncService mengorkestrasi satu batch: refresh token sekali, lalu per classroom
// berurutan fetch+normalize → persist → log sukses → agregasi.
//
// Default-nya batch berhenti di kegagalan pertama (classroom berikutnya tidak
// disentuh, hasil classroom yang sudah sukses tetap tersimpan — hanya terlihat
// lewat sync log). ContinueOnError mengubah kebijakan itu: kegagalan dicatat di
// sync log dan batch lanjut, caller menerima hasil classroom yang sukses saja.
type SyncService struct {
	Source          ClassroomSource
	Writer          SnapshotWriter
	Fetch           *FetchService
	ContinueOnError bool
}

func NewSyncService(source ClassroomSource, writer SnapshotWriter) *SyncService {
	return &SyncService{
		Source: source,
		Writer: writer,
		Fetch:  NewFetchService(source),
	}
}

func (s *SyncService) SyncClassrooms(ctx context.Context, req dto.SyncClassroomsRequest) ([]dto.SyncResult, error) {
	// 1) Refresh kredensial sekali untuk seluruh batch
	if err := s.Source.RefreshAccessToken(ctx); err != nil {
		log.Printf("[SyncService] Token refresh error: %v", err)
		return nil, &CredentialError{Err: err}
	}

	// 2) Proses classroom berurutan, tanpa paralelisme intra-batch
	results := make([]dto.SyncResult, 0, len(req.ClassroomIDs))
	for _, classroomID := range req.ClassroomIDs {
		result, err := s.syncOne(ctx, classroomID, req.TopicID)
		if err != nil {
			log.Printf("[SyncService] Error syncing classroom %s: %v", classroomID, err)
			s.logFailure(ctx, classroomID, req.TopicID, err)
			if s.ContinueOnError {
				continue
			}
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *SyncService) syncOne(ctx context.Context, classroomID string, topicID *string) (*dto.SyncResult, error) {
	snap, err := s.Fetch.BuildSnapshot(ctx, classroomID, topicID)
	if err != nil {
		return nil, err
	}

	if err := s.Writer.SaveSnapshot(ctx, snap); err != nil {
		return nil, &PersistenceError{ClassroomID: classroomID, Err: err}
	}

	message := fmt.Sprintf("Synced classroom %s", classroomID)
	if topicID != nil {
		message += fmt.Sprintf(" for topic %s", *topicID)
	}
	if err := s.Writer.AppendSyncLog(ctx, classroomID, topicID, model.SyncStatusSuccess, message); err != nil {
		return nil, &PersistenceError{ClassroomID: classroomID, Err: err}
	}

	topicResults := CalculateTopicProgress(snap)
	result := SummarizeClassroom(snap, topicResults)

	log.Printf("[SyncService] %s — current_lesson=%q submitted=%d", message, result.CurrentLesson, result.TotalSubmitted)
	return &result, nil
}

// Percobaan gagal tetap dicatat di audit sebelum error diteruskan ke caller.
func (s *SyncService) logFailure(ctx context.Context, classroomID string, topicID *string, cause error) {
	if err := s.Writer.AppendSyncLog(ctx, classroomID, topicID, model.SyncStatusFailed, cause.Error()); err != nil {
		log.Printf("[SyncService] Gagal mencatat sync log failed untuk %s: %v", classroomID, err)
	}
}
