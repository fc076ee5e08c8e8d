package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock services ---

type mockVenueService struct {
	createVenueFn func(ctx context.Context, venue *models.Venue) error
	getVenueFn    func(ctx context.Context, id uint) (*models.Venue, error)
	listVenuesFn  func(ctx context.Context) ([]models.Venue, error)
	updateVenueFn func(ctx context.Context, id uint, name, address string, capacity int) (*models.Venue, error)
	deleteVenueFn func(ctx context.Context, id uint) error
}

func (m *mockVenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.createVenueFn(ctx, venue)
}
func (m *mockVenueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return m.getVenueFn(ctx, id)
}
func (m *mockVenueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return m.listVenuesFn(ctx)
}
func (m *mockVenueService) UpdateVenue(ctx context.Context, id uint, name, address string, capacity int) (*models.Venue, error) {
	return m.updateVenueFn(ctx, id, name, address, capacity)
}
func (m *mockVenueService) DeleteVenue(ctx context.Context, id uint) error {
	return m.deleteVenueFn(ctx, id)
}

type mockShowService struct {
	createShowFn func(ctx context.Context, event *models.Event) error
	getShowFn    func(ctx context.Context, id uint) (*models.Event, error)
	listShowsFn  func(ctx context.Context) ([]models.Event, error)
	updateShowFn func(ctx context.Context, id uint, apply func(*models.Event)) (*models.Event, error)
	deleteShowFn func(ctx context.Context, id uint) error
}

func (m *mockShowService) CreateShow(ctx context.Context, event *models.Event) error {
	return m.createShowFn(ctx, event)
}
func (m *mockShowService) GetShow(ctx context.Context, id uint) (*models.Event, error) {
	return m.getShowFn(ctx, id)
}
func (m *mockShowService) ListShows(ctx context.Context) ([]models.Event, error) {
	return m.listShowsFn(ctx)
}
func (m *mockShowService) UpdateShow(ctx context.Context, id uint, apply func(*models.Event)) (*models.Event, error) {
	return m.updateShowFn(ctx, id, apply)
}
func (m *mockShowService) DeleteShow(ctx context.Context, id uint) error {
	return m.deleteShowFn(ctx, id)
}

func jsonRequest(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

// --- Venue endpoints ---

func TestAPIListVenues(t *testing.T) {
	venues := &mockVenueService{
		listVenuesFn: func(ctx context.Context) ([]models.Venue, error) {
			return []models.Venue{
				{ID: 1, Name: "Grand Hall", Address: "123 Main St", Capacity: 100},
				{ID: 2, Name: "Small Room", Address: "9 Side St", Capacity: 20},
			}, nil
		},
	}
	h := NewAPIHandler(venues, &mockShowService{})

	rec, c := jsonRequest(http.MethodGet, "/api/venues", "")
	err := h.ListVenues(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"venues"`)
	assert.Contains(t, rec.Body.String(), `"Grand Hall"`)
	assert.Contains(t, rec.Body.String(), `"capacity":100`)
}

func TestAPIGetVenue_NotFound(t *testing.T) {
	venues := &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, service.ErrVenueNotFound
		},
	}
	h := NewAPIHandler(venues, &mockShowService{})

	_, c := jsonRequest(http.MethodGet, "/api/venues/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.GetVenue(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	}
}

func TestAPIGetVenue_BadID(t *testing.T) {
	h := NewAPIHandler(&mockVenueService{}, &mockShowService{})

	_, c := jsonRequest(http.MethodGet, "/api/venues/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetVenue(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}

func TestAPICreateVenue_Success(t *testing.T) {
	var created *models.Venue
	venues := &mockVenueService{
		createVenueFn: func(ctx context.Context, venue *models.Venue) error {
			venue.ID = 1
			created = venue
			return nil
		},
	}
	h := NewAPIHandler(venues, &mockShowService{})

	rec, c := jsonRequest(http.MethodPost, "/api/venues",
		`{"name":"Grand Hall","address":"123 Main St","capacity":100}`)

	err := h.CreateVenue(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue created successfully")
	assert.Equal(t, "Grand Hall", created.Name)
	assert.Equal(t, 100, created.Capacity)
}

func TestAPICreateVenue_ValidationErrors(t *testing.T) {
	h := NewAPIHandler(&mockVenueService{}, &mockShowService{})

	rec, c := jsonRequest(http.MethodPost, "/api/venues",
		`{"name":"G","address":"123 Main St","capacity":0}`)

	err := h.CreateVenue(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
	assert.Contains(t, rec.Body.String(), `"name"`)
	assert.Contains(t, rec.Body.String(), `"capacity"`)
}

func TestAPIUpdateVenue_Success(t *testing.T) {
	var gotID uint
	venues := &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: id, Name: "Old Hall", Address: "Old St", Capacity: 10}, nil
		},
		updateVenueFn: func(ctx context.Context, id uint, name, address string, capacity int) (*models.Venue, error) {
			gotID = id
			return &models.Venue{ID: id, Name: name, Address: address, Capacity: capacity}, nil
		},
	}
	h := NewAPIHandler(venues, &mockShowService{})

	rec, c := jsonRequest(http.MethodPut, "/api/venues/4",
		`{"name":"Grand Hall","address":"123 Main St","capacity":250}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := h.UpdateVenue(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(4), gotID)
	assert.Contains(t, rec.Body.String(), "Venue updated successfully")
}

func TestAPIDeleteVenue_Success(t *testing.T) {
	var deleted []uint
	venues := &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: id}, nil
		},
		deleteVenueFn: func(ctx context.Context, id uint) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	h := NewAPIHandler(venues, &mockShowService{})

	rec, c := jsonRequest(http.MethodDelete, "/api/venues/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := h.DeleteVenue(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{4}, deleted)
}

// --- Show endpoints ---

func TestAPIListShows(t *testing.T) {
	venueID := uint(2)
	shows := &mockShowService{
		listShowsFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{
				{ID: 1, Name: "Evening Concert", VenueID: &venueID, TicketPrice: 49.50},
			}, nil
		},
	}
	h := NewAPIHandler(&mockVenueService{}, shows)

	rec, c := jsonRequest(http.MethodGet, "/api/shows", "")
	err := h.ListShows(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shows"`)
	assert.Contains(t, rec.Body.String(), `"Evening Concert"`)
}

// knownVenues resolves every venue id, for show tests that are not about
// venue existence.
func knownVenues() *mockVenueService {
	return &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: id, Name: "Grand Hall"}, nil
		},
	}
}

func TestAPICreateShow_Success(t *testing.T) {
	var created *models.Event
	shows := &mockShowService{
		createShowFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			created = event
			return nil
		},
	}
	h := NewAPIHandler(knownVenues(), shows)

	rec, c := jsonRequest(http.MethodPost, "/api/shows",
		`{"name":"Evening Concert","venue_id":3,"start_time":"2026-09-01 19:00","end_time":"2026-09-01 22:00","ticket_price":49.5}`)

	err := h.CreateShow(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show created successfully")
	assert.Equal(t, "Evening Concert", created.Name)
	assert.Equal(t, time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC), created.StartTime)
	if assert.NotNil(t, created.VenueID) {
		assert.Equal(t, uint(3), *created.VenueID)
	}
}

func TestAPICreateShow_UnknownVenueRejected(t *testing.T) {
	venues := &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, service.ErrVenueNotFound
		},
	}
	var createCalled bool
	shows := &mockShowService{
		createShowFn: func(ctx context.Context, event *models.Event) error {
			createCalled = true
			return nil
		},
	}
	h := NewAPIHandler(venues, shows)

	rec, c := jsonRequest(http.MethodPost, "/api/shows",
		`{"name":"Evening Concert","venue_id":999,"start_time":"2026-09-01 19:00","end_time":"2026-09-01 22:00","ticket_price":49.5}`)

	err := h.CreateShow(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select a venue.")
	assert.False(t, createCalled)
}

func TestAPICreateShow_StartAfterEndRejected(t *testing.T) {
	h := NewAPIHandler(knownVenues(), &mockShowService{})

	rec, c := jsonRequest(http.MethodPost, "/api/shows",
		`{"name":"Evening Concert","venue_id":3,"start_time":"2026-09-01 22:00","end_time":"2026-09-01 19:00","ticket_price":49.5}`)

	err := h.CreateShow(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "End time must be after start time.")
}

func TestAPIUpdateShow_AppliesFields(t *testing.T) {
	shows := &mockShowService{
		getShowFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Name: "Old Name"}, nil
		},
		updateShowFn: func(ctx context.Context, id uint, apply func(*models.Event)) (*models.Event, error) {
			event := &models.Event{ID: id}
			apply(event)
			assert.Equal(t, "Matinee Concert", event.Name)
			assert.Equal(t, 30.0, event.TicketPrice)
			return event, nil
		},
	}
	h := NewAPIHandler(knownVenues(), shows)

	rec, c := jsonRequest(http.MethodPut, "/api/shows/9",
		`{"name":"Matinee Concert","venue_id":3,"start_time":"2026-09-01 14:00","end_time":"2026-09-01 17:00","ticket_price":30}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.UpdateShow(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show updated successfully")
}

func TestAPIUpdateShow_UnknownVenueRejected(t *testing.T) {
	venues := &mockVenueService{
		getVenueFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, service.ErrVenueNotFound
		},
	}
	shows := &mockShowService{
		getShowFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Name: "Evening Concert"}, nil
		},
	}
	h := NewAPIHandler(venues, shows)

	rec, c := jsonRequest(http.MethodPut, "/api/shows/9",
		`{"name":"Evening Concert","venue_id":999,"start_time":"2026-09-01 19:00","end_time":"2026-09-01 22:00","ticket_price":49.5}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.UpdateShow(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select a venue.")
}

func TestAPIDeleteShow_NotFound(t *testing.T) {
	shows := &mockShowService{
		getShowFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, service.ErrShowNotFound
		},
	}
	h := NewAPIHandler(&mockVenueService{}, shows)

	_, c := jsonRequest(http.MethodDelete, "/api/shows/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.DeleteShow(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	}
}
