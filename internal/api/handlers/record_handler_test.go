package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-records-service/internal/api/middleware"
	"health-records-service/internal/auth"
	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/domain/entities"
	"health-records-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ services.RecordServiceContract = (*mockRecordService)(nil)

type mockRecordService struct {
	CreateRecordFunc  func(ctx context.Context, caller *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error)
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]dtos.RecordDTO, error)
}

func (m *mockRecordService) CreateRecord(ctx context.Context, caller *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error) {
	return m.CreateRecordFunc(ctx, caller, req)
}

func (m *mockRecordService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dtos.RecordDTO, error) {
	return m.ListByPatientFunc(ctx, patientID)
}

// stubAuthenticate attaches a fixed principal, standing in for the real
// middleware chain already covered by its own tests.
func stubAuthenticate(principal *auth.Principal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.PrincipalKey, principal)
		return c.Next()
	}
}

func newRecordApp(svc services.RecordServiceContract, principal *auth.Principal) *fiber.App {
	app := fiber.New()
	h := NewRecordHandler(svc, log.New(io.Discard, "", 0))
	RegisterRecordRoutes(app, h, stubAuthenticate(principal), auth.DefaultPolicy())
	return app
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRecordHandler_CreateRecord(t *testing.T) {
	caller := &auth.Principal{ID: uuid.New(), Name: "Dr. Aisha Bello", Role: entities.RoleDoctor}
	recordID := uuid.New()

	svc := &mockRecordService{
		CreateRecordFunc: func(ctx context.Context, got *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error) {
			assert.Equal(t, caller.ID, got.ID)
			assert.Equal(t, "lab", req.RecordType)
			assert.Equal(t, "glucose 92", req.Data)
			return &dtos.CreateRecordResponse{Message: "Record created", RecordID: recordID}, nil
		},
	}
	app := newRecordApp(svc, caller)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/records", fiber.Map{
		"patientId":  uuid.New(),
		"recordType": "lab",
		"data":       "glucose 92",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var ack dtos.CreateRecordResponse
	decodeBody(t, resp, &ack)
	assert.Equal(t, "Record created", ack.Message)
	assert.Equal(t, recordID, ack.RecordID)
}

func TestRecordHandler_CreateRecord_Errors(t *testing.T) {
	caller := &auth.Principal{ID: uuid.New(), Role: entities.RoleDoctor}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "validation error",
			serviceErr: fmt.Errorf("%w: patientId, recordType, and data are required", services.ErrValidation),
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "patient not found",
			serviceErr: fmt.Errorf("%w: missing", services.ErrPatientNotFound),
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "opaque internal error",
			serviceErr: fmt.Errorf("connection refused"),
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRecordService{
				CreateRecordFunc: func(ctx context.Context, caller *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error) {
					return nil, tt.serviceErr
				},
			}
			app := newRecordApp(svc, caller)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/records", fiber.Map{
				"recordType": "lab",
			}))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			// Internal detail never leaks to the caller.
			var body map[string]any
			decodeBody(t, resp, &body)
			assert.NotContains(t, body["message"], "connection refused")
		})
	}
}

func TestRecordHandler_ListByPatient(t *testing.T) {
	caller := &auth.Principal{ID: uuid.New(), Role: entities.RoleNurse}
	patientID := uuid.New()

	svc := &mockRecordService{
		ListByPatientFunc: func(ctx context.Context, got uuid.UUID) ([]dtos.RecordDTO, error) {
			assert.Equal(t, patientID, got)
			return []dtos.RecordDTO{{
				ID:         uuid.New(),
				PatientID:  patientID,
				CreatedBy:  dtos.RecordAuthorDTO{Name: "Dr. Aisha Bello", Role: entities.RoleDoctor},
				RecordType: "lab",
				Data:       "glucose 92",
			}}, nil
		},
	}
	app := newRecordApp(svc, caller)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/records/patient/"+patientID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []dtos.RecordDTO
	decodeBody(t, resp, &result)
	require.Len(t, result, 1)
	assert.Equal(t, "glucose 92", result[0].Data)
	assert.Equal(t, entities.RoleDoctor, result[0].CreatedBy.Role)
}

func TestRecordHandler_ListByPatient_NotFound(t *testing.T) {
	caller := &auth.Principal{ID: uuid.New(), Role: entities.RoleDoctor}

	t.Run("unparseable patient id", func(t *testing.T) {
		svc := &mockRecordService{}
		app := newRecordApp(svc, caller)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/records/patient/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown patient", func(t *testing.T) {
		svc := &mockRecordService{
			ListByPatientFunc: func(ctx context.Context, patientID uuid.UUID) ([]dtos.RecordDTO, error) {
				return nil, services.ErrPatientNotFound
			},
		}
		app := newRecordApp(svc, caller)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/records/patient/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
