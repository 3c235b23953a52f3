package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-care-server/internal/metrics"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/scheduler"
)

// In-memory store backing the handler tests; auth middleware is not
// mounted, the handler's own behavior is under test.

type memStore struct {
	appointments []models.Appointment
	nextID       int
}

func (m *memStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *memStore) Get(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			a := m.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memStore) Add(ctx context.Context, a *models.Appointment) error {
	m.nextID++
	a.ID = fmt.Sprintf("appt-%d", m.nextID)
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *memStore) Update(ctx context.Context, a *models.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == a.ID {
			m.appointments[i] = *a
			return nil
		}
	}
	return fmt.Errorf("unknown appointment %s", a.ID)
}

func (m *memStore) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			removed := m.appointments[i]
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return &removed, nil
		}
	}
	return nil, nil
}

type memDirectory struct{}

func (memDirectory) GetDoctor(ctx context.Context, id string) (*models.Doctor, error)   { return nil, nil }
func (memDirectory) GetPatient(ctx context.Context, id string) (*models.Patient, error) { return nil, nil }

var testCollector = metrics.NewCollector("cliniccare_test")

func newTestRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := scheduler.New(store, memDirectory{}, memDirectory{}, zap.NewNop())
	h := NewAppointmentHandler(s, testCollector)

	router := gin.New()
	router.POST("/BookAnAppointment", h.BookAnAppointment)
	router.PUT("/StatusToCancelAppointment", h.StatusToCancelAppointment)
	router.PUT("/UpdateAppointmentStatus", h.UpdateAppointmentStatus)
	router.GET("/ViewAppointmentByAppointmentId", h.ViewAppointmentByAppointmentID)
	return router
}

func bookBody(doctorID string, at time.Time) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"patientId":           "patient-1",
		"doctorId":            doctorID,
		"appointmentDate":     at.Format(time.RFC3339),
		"symptomsDescription": "fever",
		"natureOfVisit":       "General",
	})
	return body
}

func TestBookAnAppointment_Success(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/BookAnAppointment",
		bytes.NewReader(bookBody("doc-1", time.Now().Add(24*time.Hour))))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.appointments) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(store.appointments))
	}
	if store.appointments[0].Status != models.StatusScheduled {
		t.Errorf("expected Scheduled, got %s", store.appointments[0].Status)
	}
}

func TestBookAnAppointment_PastDate_BadRequest(t *testing.T) {
	router := newTestRouter(&memStore{})

	req := httptest.NewRequest(http.MethodPost, "/BookAnAppointment",
		bytes.NewReader(bookBody("doc-1", time.Now().Add(-time.Hour))))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Invalid Appointment Date or Time")) {
		t.Errorf("expected the fixed validation message, got %s", w.Body.String())
	}
}

func TestBookAnAppointment_Conflict_BadRequest(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(store)
	at := time.Now().Add(24 * time.Hour)

	first := httptest.NewRequest(http.MethodPost, "/BookAnAppointment", bytes.NewReader(bookBody("doc-1", at)))
	first.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/BookAnAppointment",
		bytes.NewReader(bookBody("doc-1", at.Add(2*time.Minute))))
	second.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, second)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on conflict, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Prebooked Appointment")) {
		t.Errorf("expected the conflict message, got %s", w.Body.String())
	}
}

func TestStatusToCancelAppointment_UnknownID_NotFound(t *testing.T) {
	router := newTestRouter(&memStore{})

	req := httptest.NewRequest(http.MethodPut, "/StatusToCancelAppointment?id=missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestUpdateAppointmentStatus_UnknownStatus_BadRequest(t *testing.T) {
	store := &memStore{}
	store.appointments = append(store.appointments, models.Appointment{
		BaseModel: models.BaseModel{ID: "appt-1"},
		DoctorID:  "doc-1",
		Status:    models.StatusScheduled,
	})
	router := newTestRouter(store)

	body, _ := json.Marshal(map[string]string{"id": "appt-1", "status": "no_show"})
	req := httptest.NewRequest(http.MethodPut, "/UpdateAppointmentStatus", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d: %s", w.Code, w.Body.String())
	}
}

func TestViewAppointmentByAppointmentID_UnknownID_NotFound(t *testing.T) {
	router := newTestRouter(&memStore{})

	req := httptest.NewRequest(http.MethodGet, "/ViewAppointmentByAppointmentId?id=missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
