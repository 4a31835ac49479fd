// file: internals/features/classrooms/service/google_source.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const classroomAPIBase = "https://classroom.googleapis.com/v1"

/* =========================
   Raw wire types (Google Classroom v1)
========================= */

type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type StudentProfileName struct {
	FullName string `json:"fullName"`
}

type StudentProfile struct {
	Name         *StudentProfileName `json:"name,omitempty"`
	EmailAddress string              `json:"emailAddress"`
}

type CourseStudent struct {
	UserID  string          `json:"userId"`
	Profile *StudentProfile `json:"profile,omitempty"`
}

type CourseTopic struct {
	TopicID string `json:"topicId"`
	Name    string `json:"name"`
}

type CourseWorkDueDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type CourseWork struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	TopicID string             `json:"topicId"`
	DueDate *CourseWorkDueDate `json:"dueDate,omitempty"`
}

type StateHistory struct {
	State          string `json:"state"`
	StateTimestamp string `json:"stateTimestamp"`
}

type SubmissionHistory struct {
	StateHistory *StateHistory `json:"stateHistory,omitempty"`
}

type StudentSubmission struct {
	UserID            string              `json:"userId"`
	CourseWorkID      string              `json:"courseWorkId"`
	AssignedGrade     *float64            `json:"assignedGrade,omitempty"`
	SubmissionHistory []SubmissionHistory `json:"submissionHistory,omitempty"`
}

/* =========================
   Source interface + Google impl
========================= */

// ClassroomSource: penyedia data read-only dari platform eksternal.
// Token di-refresh sekali per batch lewat RefreshAccessToken.
type ClassroomSource interface {
	RefreshAccessToken(ctx context.Context) error
	GetCourse(ctx context.Context, courseID string) (*Course, error)
	ListStudents(ctx context.Context, courseID string) ([]CourseStudent, error)
	ListTopics(ctx context.Context, courseID string) ([]CourseTopic, error)
	ListCourseWork(ctx context.Context, courseID string) ([]CourseWork, error)
	ListStudentSubmissions(ctx context.Context, courseID, courseWorkID string) ([]StudentSubmission, error)
}

type googleClassroomSource struct {
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	baseURL     string
}

// NewGoogleClassroomSource memakai refresh-token flow OAuth2 Google.
// Kredensial wajib dari konfigurasi; tidak ada default.
func NewGoogleClassroomSource(ctx context.Context, clientID, clientSecret, refreshToken string) ClassroomSource {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			"https://www.googleapis.com/auth/classroom.courses.readonly",
			"https://www.googleapis.com/auth/classroom.rosters.readonly",
			"https://www.googleapis.com/auth/classroom.topics.readonly",
			"https://www.googleapis.com/auth/classroom.coursework.students.readonly",
		},
	}
	ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	client := oauth2.NewClient(ctx, ts)
	client.Timeout = 30 * time.Second

	return &googleClassroomSource{
		httpClient:  client,
		tokenSource: ts,
		baseURL:     classroomAPIBase,
	}
}

func (s *googleClassroomSource) RefreshAccessToken(ctx context.Context) error {
	tok, err := s.tokenSource.Token()
	if err != nil {
		return err
	}
	if tok.AccessToken == "" {
		return errors.New("Failed to obtain access token")
	}
	return nil
}

func (s *googleClassroomSource) GetCourse(ctx context.Context, courseID string) (*Course, error) {
	var course Course
	if err := s.getJSON(ctx, "/courses/"+url.PathEscape(courseID), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *googleClassroomSource) ListStudents(ctx context.Context, courseID string) ([]CourseStudent, error) {
	// TODO: ikuti nextPageToken untuk roster > 100 siswa
	var resp struct {
		Students []CourseStudent `json:"students"`
	}
	if err := s.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/students", &resp); err != nil {
		return nil, err
	}
	return resp.Students, nil
}

func (s *googleClassroomSource) ListTopics(ctx context.Context, courseID string) ([]CourseTopic, error) {
	// Catatan: field list di API memang bernama "topic" (singular)
	var resp struct {
		Topic []CourseTopic `json:"topic"`
	}
	if err := s.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/topics", &resp); err != nil {
		return nil, err
	}
	return resp.Topic, nil
}

func (s *googleClassroomSource) ListCourseWork(ctx context.Context, courseID string) ([]CourseWork, error) {
	var resp struct {
		CourseWork []CourseWork `json:"courseWork"`
	}
	if err := s.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/courseWork", &resp); err != nil {
		return nil, err
	}
	return resp.CourseWork, nil
}

func (s *googleClassroomSource) ListStudentSubmissions(ctx context.Context, courseID, courseWorkID string) ([]StudentSubmission, error) {
	var resp struct {
		StudentSubmissions []StudentSubmission `json:"studentSubmissions"`
	}
	path := "/courses/" + url.PathEscape(courseID) + "/courseWork/" + url.PathEscape(courseWorkID) + "/studentSubmissions"
	if err := s.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.StudentSubmissions, nil
}

func (s *googleClassroomSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("classroom API %s: status %d: %s", path, res.StatusCode, string(body))
	}
	return json.NewDecoder(res.Body).Decode(out)
}
