// file: internals/features/classrooms/service/fakes_test.go
package service

import (
	"context"
	"errors"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	model "classroomsync_backend/internals/features/classrooms/model"
)

// ── Fake ClassroomSource ──

type fakeSource struct {
	course      *Course
	students    []CourseStudent
	topics      []CourseTopic
	courseWork  []CourseWork
	submissions map[string][]StudentSubmission // keyed by courseWorkID

	refreshErr    error
	courseErr     error
	studentsErr   error
	topicsErr     error
	courseWorkErr error
	submissionErr error

	fetchedCourses []string // urutan GetCourse yang dipanggil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		course:      &Course{ID: "c1", Name: "Kelas 7A", Description: "Matematika"},
		submissions: map[string][]StudentSubmission{},
	}
}

func (f *fakeSource) RefreshAccessToken(_ context.Context) error { return f.refreshErr }

func (f *fakeSource) GetCourse(_ context.Context, courseID string) (*Course, error) {
	f.fetchedCourses = append(f.fetchedCourses, courseID)
	if f.courseErr != nil {
		return nil, f.courseErr
	}
	return f.course, nil
}

func (f *fakeSource) ListStudents(_ context.Context, _ string) ([]CourseStudent, error) {
	return f.students, f.studentsErr
}

func (f *fakeSource) ListTopics(_ context.Context, _ string) ([]CourseTopic, error) {
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	return f.topics, nil
}

func (f *fakeSource) ListCourseWork(_ context.Context, _ string) ([]CourseWork, error) {
	return f.courseWork, f.courseWorkErr
}

func (f *fakeSource) ListStudentSubmissions(_ context.Context, _, courseWorkID string) ([]StudentSubmission, error) {
	if f.submissionErr != nil {
		return nil, f.submissionErr
	}
	return f.submissions[courseWorkID], nil
}

// ── Fake SnapshotWriter ──

type loggedSync struct {
	classroomID string
	status      model.SyncStatus
	message     string
}

type fakeWriter struct {
	saved    []*dto.ClassroomSnapshot
	logs     []loggedSync
	failSave map[string]error // classroomID → error saat SaveSnapshot
	logErr   error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{failSave: map[string]error{}}
}

func (w *fakeWriter) SaveSnapshot(_ context.Context, snap *dto.ClassroomSnapshot) error {
	if err, ok := w.failSave[snap.ClassroomID]; ok {
		return err
	}
	w.saved = append(w.saved, snap)
	return nil
}

func (w *fakeWriter) AppendSyncLog(_ context.Context, classroomID string, _ *string, status model.SyncStatus, message string) error {
	if w.logErr != nil {
		return w.logErr
	}
	w.logs = append(w.logs, loggedSync{classroomID: classroomID, status: status, message: message})
	return nil
}

// ── util ──

var errBoom = errors.New("boom")

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func submissionWithHistory(userID, cwID string, states ...StateHistory) StudentSubmission {
	sub := StudentSubmission{UserID: userID, CourseWorkID: cwID}
	for i := range states {
		sub.SubmissionHistory = append(sub.SubmissionHistory, SubmissionHistory{StateHistory: &states[i]})
	}
	return sub
}

func topicNames(results []dto.TopicResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.TopicName)
	}
	return names
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
