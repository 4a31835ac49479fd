// file: internals/features/classrooms/controller/sync_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "classroomsync_backend/internals/features/classrooms/dto"
	service "classroomsync_backend/internals/features/classrooms/service"
)

type fakeSyncer struct {
	results []dto.SyncResult
	err     error
	lastReq dto.SyncClassroomsRequest
}

func (f *fakeSyncer) SyncClassrooms(_ context.Context, req dto.SyncClassroomsRequest) ([]dto.SyncResult, error) {
	f.lastReq = req
	return f.results, f.err
}

func newTestApp(syncer ClassroomSyncer) *fiber.App {
	app := fiber.New()
	ctrl := &SyncController{Syncer: syncer, Validator: validator.New()}
	app.Post("/sync", ctrl.SyncClassrooms)
	return app
}

func postSync(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return res
}

func TestSyncClassroomsHandlerSuccess(t *testing.T) {
	syncer := &fakeSyncer{
		results: []dto.SyncResult{{
			ClassroomID:    "c1",
			TotalSubmitted: 3,
			CurrentLesson:  "Lesson 2",
			TopicResults:   []dto.TopicResult{},
		}},
	}
	app := newTestApp(syncer)

	res := postSync(t, app, `{"classroom_ids":["c1"],"topic_id":"t1"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	var body struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []dto.SyncResult `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Sync completed for multiple classrooms" {
		t.Errorf("envelope = %+v", body)
	}
	if len(body.Data) != 1 || body.Data[0].ClassroomID != "c1" {
		t.Errorf("data = %+v", body.Data)
	}
	if syncer.lastReq.TopicID == nil || *syncer.lastReq.TopicID != "t1" {
		t.Errorf("TopicID diteruskan = %v, want t1", syncer.lastReq.TopicID)
	}
}

func TestSyncClassroomsHandlerValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing classroom_ids", `{}`},
		{"empty classroom_ids", `{"classroom_ids":[]}`},
		{"blank id in list", `{"classroom_ids":[""]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&fakeSyncer{})
			res := postSync(t, app, tc.body)
			if res.StatusCode != fiber.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", res.StatusCode)
			}
		})
	}
}

func TestSyncClassroomsHandlerMalformedBody(t *testing.T) {
	app := newTestApp(&fakeSyncer{})
	res := postSync(t, app, `{"classroom_ids":`)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestSyncClassroomsHandlerCredentialError(t *testing.T) {
	syncer := &fakeSyncer{err: &service.CredentialError{Err: errors.New("invalid_grant")}}
	app := newTestApp(syncer)

	res := postSync(t, app, `{"classroom_ids":["c1"]}`)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}

	var body struct {
		Message   string `json:"message"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Message, "Failed to refresh access token") {
		t.Errorf("message = %q", body.Message)
	}
	if body.ErrorCode != "UNAUTHORIZED" {
		t.Errorf("error_code = %q", body.ErrorCode)
	}
}

func TestSyncClassroomsHandlerProcessingError(t *testing.T) {
	syncer := &fakeSyncer{err: &service.PersistenceError{ClassroomID: "c2", Err: errors.New("insert failed")}}
	app := newTestApp(syncer)

	res := postSync(t, app, `{"classroom_ids":["c1","c2"]}`)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.StatusCode)
	}
}
