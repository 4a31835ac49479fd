// file: internals/features/classrooms/service/fetch_service.go
package service

import (
	"context"
	"log"
	"time"

	dto "classroomsync_backend/internals/features/classrooms/dto"
)

const turnedInState = "TURNED_IN"

// FetchService menormalkan data mentah sumber eksternal menjadi ClassroomSnapshot.
type FetchService struct {
	Source ClassroomSource
}

func NewFetchService(source ClassroomSource) *FetchService {
	return &FetchService{Source: source}
}

// BuildSnapshot mengambil course + roster + topics + courseWork (+submissions per
// assignment) untuk satu classroom, lalu menormalkan ke snapshot internal.
// Error apa pun di tengah fetch membatalkan sync classroom tsb.
func (s *FetchService) BuildSnapshot(ctx context.Context, classroomID string, topicID *string) (*dto.ClassroomSnapshot, error) {
	snap, err := s.buildSnapshot(ctx, classroomID, topicID)
	if err != nil {
		log.Printf("[FetchService] Error fetching data for classroom_id %s: %v", classroomID, err)
		return nil, &SourceFetchError{ClassroomID: classroomID, Err: err}
	}
	return snap, nil
}

func (s *FetchService) buildSnapshot(ctx context.Context, classroomID string, topicID *string) (*dto.ClassroomSnapshot, error) {
	course, err := s.Source.GetCourse(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	students, err := s.Source.ListStudents(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	// Topic list boleh gagal: lanjut dengan topic kosong, jangan gugurkan sync.
	topics, err := s.Source.ListTopics(ctx, classroomID)
	if err != nil {
		log.Printf("[FetchService] Failed to fetch topics for classroom_id %s: %v", classroomID, err)
		topics = nil
	}

	courseWork, err := s.Source.ListCourseWork(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	if topicID != nil {
		filtered := make([]CourseWork, 0, len(courseWork))
		for _, cw := range courseWork {
			if cw.TopicID == *topicID {
				filtered = append(filtered, cw)
			}
		}
		if len(filtered) == 0 {
			return nil, &NoAssignmentsError{ClassroomID: classroomID, TopicID: *topicID}
		}
		courseWork = filtered
	}

	// Satu call per assignment (mengikuti perilaku sumber; kandidat batching bila throughput jadi masalah)
	submissions := make([]dto.SnapshotSubmission, 0)
	for _, cw := range courseWork {
		subs, err := s.Source.ListStudentSubmissions(ctx, classroomID, cw.ID)
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			submissions = append(submissions, normalizeSubmission(sub, cw))
		}
	}

	snap := &dto.ClassroomSnapshot{
		ClassroomID: classroomID,
		Name:        defaultString(course.Name, "Unknown Classroom"),
		Description: course.Description,
		Students:    normalizeStudents(students),
		Assignments: normalizeAssignments(courseWork),
		Submissions: submissions,
		Topics:      normalizeTopics(topics),
	}
	return snap, nil
}

func normalizeStudents(students []CourseStudent) []dto.SnapshotStudent {
	out := make([]dto.SnapshotStudent, 0, len(students))
	for _, st := range students {
		name := "Unknown Student"
		email := ""
		if st.Profile != nil {
			if st.Profile.Name != nil && st.Profile.Name.FullName != "" {
				name = st.Profile.Name.FullName
			}
			email = st.Profile.EmailAddress
		}
		out = append(out, dto.SnapshotStudent{
			StudentID: st.UserID,
			Name:      name,
			Email:     email,
		})
	}
	return out
}

func normalizeAssignments(courseWork []CourseWork) []dto.SnapshotAssignment {
	out := make([]dto.SnapshotAssignment, 0, len(courseWork))
	for _, cw := range courseWork {
		out = append(out, dto.SnapshotAssignment{
			AssignmentID: cw.ID,
			Title:        defaultString(cw.Title, "Unknown Assignment"),
			DueDate:      dueDateOf(cw.DueDate),
			TopicID:      optionalID(cw.TopicID),
		})
	}
	return out
}

func normalizeTopics(topics []CourseTopic) []dto.SnapshotTopic {
	out := make([]dto.SnapshotTopic, 0, len(topics))
	for _, t := range topics {
		out = append(out, dto.SnapshotTopic{
			TopicID: t.TopicID,
			Name:    t.Name,
			Order:   lessonNumber(t.Name),
		})
	}
	return out
}

func normalizeSubmission(sub StudentSubmission, cw CourseWork) dto.SnapshotSubmission {
	// submitted_at: entry TURNED_IN PERTAMA di history (bukan yang terbaru)
	var submittedAt *time.Time
	for _, h := range sub.SubmissionHistory {
		if h.StateHistory != nil && h.StateHistory.State == turnedInState {
			if ts, err := time.Parse(time.RFC3339, h.StateHistory.StateTimestamp); err == nil {
				submittedAt = &ts
			}
			break
		}
	}

	var grade *float64
	if sub.AssignedGrade != nil {
		g := *sub.AssignedGrade
		grade = &g
	}

	return dto.SnapshotSubmission{
		StudentID:    sub.UserID,
		AssignmentID: sub.CourseWorkID,
		TopicID:      optionalID(cw.TopicID),
		SubmittedAt:  submittedAt,
		Graded:       sub.AssignedGrade != nil, // graded ⇔ ada assignedGrade, terlepas dari submitted_at
		Grade:        grade,
	}
}

func dueDateOf(d *CourseWorkDueDate) *time.Time {
	if d == nil {
		return nil
	}
	due := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return &due
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
