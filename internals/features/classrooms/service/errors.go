// file: internals/features/classrooms/service/errors.go
package service

import "fmt"

// CredentialError: refresh access token gagal — fatal untuk seluruh batch (401).
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("Failed to refresh access token: %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// SourceFetchError: fetch data satu classroom gagal — menghentikan batch.
type SourceFetchError struct {
	ClassroomID string
	Err         error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("Failed to fetch data from Google Classroom: %v", e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

// NoAssignmentsError: filter topic tidak menghasilkan assignment satu pun.
type NoAssignmentsError struct {
	ClassroomID string
	TopicID     string
}

func (e *NoAssignmentsError) Error() string {
	return fmt.Sprintf("No assignments found for topic %s in classroom %s", e.TopicID, e.ClassroomID)
}

// PersistenceError: insert/upsert entity gagal — menghentikan batch.
type PersistenceError struct {
	ClassroomID string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("Failed to persist classroom %s: %v", e.ClassroomID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
