// file: internals/features/classrooms/service/progress_service.go
package service

import (
	"regexp"
	"sort"
	"strconv"

	dto "classroomsync_backend/internals/features/classrooms/dto"
)

var digitRun = regexp.MustCompile(`\d+`)

// lessonNumber: deretan digit PERTAMA pada nama topic ("Lesson 10" → 10).
// Nama tanpa angka → 0. Nama topic adalah teks bebas dari sumber eksternal,
// jadi parsing ini memang best-effort.
func lessonNumber(topicName string) int {
	m := digitRun.FindString(topicName)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// CalculateTopicProgress menghitung statistik per topic dari snapshot, lalu
// mengurutkan hasil berdasar angka pelajaran yang diparse ulang dari nama topic
// (bukan field order snapshot). Sort stabil: nama dengan angka sama
// mempertahankan urutan API.
func CalculateTopicProgress(snap *dto.ClassroomSnapshot) []dto.TopicResult {
	results := make([]dto.TopicResult, 0, len(snap.Topics))

	for _, topic := range snap.Topics {
		assignmentCount := 0
		for _, a := range snap.Assignments {
			if a.TopicID != nil && *a.TopicID == topic.TopicID {
				assignmentCount++
			}
		}

		submitted := 0
		notGraded := 0
		for _, s := range snap.Submissions {
			if s.TopicID == nil || *s.TopicID != topic.TopicID {
				continue
			}
			if s.SubmittedAt != nil {
				submitted++
			}
			if !s.Graded {
				notGraded++
			}
		}

		results = append(results, dto.TopicResult{
			TopicID:        topic.TopicID,
			TopicName:      topic.Name,
			TotalSubmitted: submitted,
			// boleh negatif bila submission lebih banyak dari assignment — tidak di-clamp
			TotalNotSubmitted: assignmentCount - submitted,
			TotalNotGraded:    notGraded,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return lessonNumber(results[i].TopicName) < lessonNumber(results[j].TopicName)
	})
	return results
}

// DetermineCurrentLesson: topic pertama (urutan hasil sort) yang punya submission;
// kalau tidak ada, topic pertama yang punya aktivitas apa pun; kalau tetap kosong,
// "No lessons started".
func DetermineCurrentLesson(results []dto.TopicResult) string {
	for _, t := range results {
		if t.TotalSubmitted > 0 {
			return t.TopicName
		}
	}
	for _, t := range results {
		if t.TotalSubmitted+t.TotalNotSubmitted > 0 {
			return t.TopicName
		}
	}
	return "No lessons started"
}

// SummarizeClassroom menghitung total level classroom langsung dari seluruh
// assignment/submission (independen dari breakdown per topic — submission dengan
// topic_id tak dikenal tetap terhitung di sini).
func SummarizeClassroom(snap *dto.ClassroomSnapshot, topicResults []dto.TopicResult) dto.SyncResult {
	totalSubmitted := 0
	totalNotGraded := 0
	for _, s := range snap.Submissions {
		if s.SubmittedAt != nil {
			totalSubmitted++
		}
		if !s.Graded {
			totalNotGraded++
		}
	}

	return dto.SyncResult{
		ClassroomID:       snap.ClassroomID,
		TotalSubmitted:    totalSubmitted,
		TotalNotSubmitted: len(snap.Assignments) - totalSubmitted,
		TotalNotGraded:    totalNotGraded,
		CurrentLesson:     DetermineCurrentLesson(topicResults),
		TopicResults:      topicResults,
	}
}
