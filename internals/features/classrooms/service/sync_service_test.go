// file: internals/features/classrooms/service/sync_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	model "classroomsync_backend/internals/features/classrooms/model"
)

func syncRequest(ids ...string) dto.SyncClassroomsRequest {
	return dto.SyncClassroomsRequest{ClassroomIDs: ids}
}

func TestSyncClassroomsCredentialFailureAbortsBatch(t *testing.T) {
	src := newFakeSource()
	src.refreshErr = errBoom
	writer := newFakeWriter()

	_, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), syncRequest("c1", "c2"))
	if err == nil {
		t.Fatal("expected error")
	}
	var credErr *CredentialError
	if !errors.As(err, &credErr) {
		t.Fatalf("error type = %T, want *CredentialError", err)
	}
	// tidak ada classroom yang disentuh, tidak ada log
	if len(src.fetchedCourses) != 0 {
		t.Errorf("fetchedCourses = %v, want none", src.fetchedCourses)
	}
	if len(writer.logs) != 0 {
		t.Errorf("logs = %v, want none", writer.logs)
	}
}

func TestSyncClassroomsHappyPath(t *testing.T) {
	src := newFakeSource()
	src.topics = []CourseTopic{{TopicID: "t1", Name: "Lesson 1"}}
	src.courseWork = []CourseWork{{ID: "a1", Title: "Tugas 1", TopicID: "t1"}}
	src.submissions["a1"] = []StudentSubmission{
		submissionWithHistory("s1", "a1", StateHistory{State: "TURNED_IN", StateTimestamp: "2025-02-01T08:00:00Z"}),
	}
	writer := newFakeWriter()

	results, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), syncRequest("c1", "c2"))
	if err != nil {
		t.Fatalf("SyncClassrooms error: %v", err)
	}

	// hasil urut sesuai input
	if len(results) != 2 || results[0].ClassroomID != "c1" || results[1].ClassroomID != "c2" {
		t.Fatalf("results = %+v", results)
	}
	if results[0].CurrentLesson != "Lesson 1" {
		t.Errorf("CurrentLesson = %q, want Lesson 1", results[0].CurrentLesson)
	}
	if results[0].TotalSubmitted != 1 || results[0].TotalNotSubmitted != 0 {
		t.Errorf("totals = %+v", results[0])
	}

	if len(writer.saved) != 2 {
		t.Fatalf("saved snapshots = %d, want 2", len(writer.saved))
	}
	if len(writer.logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(writer.logs))
	}
	for _, l := range writer.logs {
		if l.status != model.SyncStatusSuccess {
			t.Errorf("log status = %q, want success", l.status)
		}
	}
	if !strings.Contains(writer.logs[0].message, "Synced classroom c1") {
		t.Errorf("log message = %q", writer.logs[0].message)
	}
}

func TestSyncClassroomsSuccessLogMentionsTopicFilter(t *testing.T) {
	src := newFakeSource()
	src.courseWork = []CourseWork{{ID: "a1", TopicID: "t1"}}
	writer := newFakeWriter()

	req := dto.SyncClassroomsRequest{ClassroomIDs: []string{"c1"}, TopicID: strPtr("t1")}
	if _, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), req); err != nil {
		t.Fatalf("SyncClassrooms error: %v", err)
	}
	if want := "Synced classroom c1 for topic t1"; writer.logs[0].message != want {
		t.Errorf("log message = %q, want %q", writer.logs[0].message, want)
	}
}

func TestSyncClassroomsAbortsBatchOnPersistFailure(t *testing.T) {
	src := newFakeSource()
	writer := newFakeWriter()
	writer.failSave["c2"] = errBoom

	results, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), syncRequest("c1", "c2", "c3"))
	if err == nil {
		t.Fatal("expected error")
	}
	var persistErr *PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
	if persistErr.ClassroomID != "c2" {
		t.Errorf("failing classroom = %q, want c2", persistErr.ClassroomID)
	}

	// c1 sukses dan hasilnya tetap dikembalikan bersama error
	if len(results) != 1 || results[0].ClassroomID != "c1" {
		t.Fatalf("results = %+v, want only c1", results)
	}

	// audit: satu success (c1), satu failed (c2)
	if len(writer.logs) != 2 {
		t.Fatalf("logs = %+v, want 2 entries", writer.logs)
	}
	if writer.logs[0].classroomID != "c1" || writer.logs[0].status != model.SyncStatusSuccess {
		t.Errorf("logs[0] = %+v", writer.logs[0])
	}
	if writer.logs[1].classroomID != "c2" || writer.logs[1].status != model.SyncStatusFailed {
		t.Errorf("logs[1] = %+v", writer.logs[1])
	}

	// c3 tidak pernah di-fetch
	for _, id := range src.fetchedCourses {
		if id == "c3" {
			t.Error("c3 ikut di-fetch padahal batch sudah abort")
		}
	}
}

func TestSyncClassroomsFetchFailureLogsBeforeAbort(t *testing.T) {
	src := newFakeSource()
	src.courseErr = errBoom
	writer := newFakeWriter()

	_, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), syncRequest("c1"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(writer.logs) != 1 || writer.logs[0].status != model.SyncStatusFailed {
		t.Fatalf("logs = %+v, want satu entry failed", writer.logs)
	}
	if !strings.Contains(writer.logs[0].message, "Failed to fetch data from Google Classroom") {
		t.Errorf("log message = %q", writer.logs[0].message)
	}
}

func TestSyncClassroomsContinueOnError(t *testing.T) {
	src := newFakeSource()
	writer := newFakeWriter()
	writer.failSave["c2"] = errBoom

	svc := NewSyncService(src, writer)
	svc.ContinueOnError = true

	results, err := svc.SyncClassrooms(context.Background(), syncRequest("c1", "c2", "c3"))
	if err != nil {
		t.Fatalf("SyncClassrooms error: %v", err)
	}

	// c2 dilewati, c1 dan c3 sukses
	if len(results) != 2 || results[0].ClassroomID != "c1" || results[1].ClassroomID != "c3" {
		t.Fatalf("results = %+v, want c1 dan c3", results)
	}
	if len(writer.logs) != 3 {
		t.Fatalf("logs = %+v, want 3 entries", writer.logs)
	}
	if writer.logs[1].classroomID != "c2" || writer.logs[1].status != model.SyncStatusFailed {
		t.Errorf("logs[1] = %+v, want failed c2", writer.logs[1])
	}
}

func TestSyncClassroomsTopicFilterNoMatchFailsClassroom(t *testing.T) {
	src := newFakeSource()
	src.courseWork = []CourseWork{{ID: "a1", TopicID: "t1"}}
	writer := newFakeWriter()

	req := dto.SyncClassroomsRequest{ClassroomIDs: []string{"c1"}, TopicID: strPtr("t-kosong")}
	_, err := NewSyncService(src, writer).SyncClassrooms(context.Background(), req)
	if err == nil {
		t.Fatal("expected error")
	}
	var noAssign *NoAssignmentsError
	if !errors.As(err, &noAssign) {
		t.Fatalf("error chain tanpa *NoAssignmentsError: %v", err)
	}
	// tidak ada data yang dipersist untuk classroom yang gagal filter
	if len(writer.saved) != 0 {
		t.Errorf("saved = %+v, want none", writer.saved)
	}
	if len(writer.logs) != 1 || writer.logs[0].status != model.SyncStatusFailed {
		t.Errorf("logs = %+v", writer.logs)
	}
}
