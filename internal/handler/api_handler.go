package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Padmajasharma/Bookshow/internal/dto"
	"github.com/Padmajasharma/Bookshow/internal/forms"
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/labstack/echo/v4"
)

// APIHandler is the JSON surface mirroring the server-rendered CRUD. Reads
// are public; mutations require the admin guard.
type APIHandler struct {
	venueSvc service.VenueService
	showSvc  service.ShowService
}

func NewAPIHandler(venueSvc service.VenueService, showSvc service.ShowService) *APIHandler {
	return &APIHandler{venueSvc: venueSvc, showSvc: showSvc}
}

func (h *APIHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/venues", h.ListVenues)
	g.GET("/venues/:id", h.GetVenue)
	g.POST("/venues", h.CreateVenue, middleware.RequireAdmin)
	g.PUT("/venues/:id", h.UpdateVenue, middleware.RequireAdmin)
	g.DELETE("/venues/:id", h.DeleteVenue, middleware.RequireAdmin)

	g.GET("/shows", h.ListShows)
	g.GET("/shows/:id", h.GetShow)
	g.POST("/shows", h.CreateShow, middleware.RequireAdmin)
	g.PUT("/shows/:id", h.UpdateShow, middleware.RequireAdmin)
	g.DELETE("/shows/:id", h.DeleteShow, middleware.RequireAdmin)
}

// --- Venues ---

func (h *APIHandler) ListVenues(c echo.Context) error {
	venues, err := h.venueSvc.ListVenues(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]dto.VenueResponse, len(venues))
	for i, v := range venues {
		resp[i] = dto.ToVenueResponse(&v)
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": resp})
}

func (h *APIHandler) GetVenue(c echo.Context) error {
	venue, err := h.findVenue(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"venue": dto.ToVenueResponse(venue)})
}

func (h *APIHandler) CreateVenue(c echo.Context) error {
	var req dto.VenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	form := forms.NewVenueForm(req.Name, req.Address, req.Capacity)
	if errs := form.Validate(); errs.Any() {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	venue := &models.Venue{Name: req.Name, Address: req.Address, Capacity: req.Capacity}
	if err := h.venueSvc.CreateVenue(c.Request().Context(), venue); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Venue created successfully"})
}

func (h *APIHandler) UpdateVenue(c echo.Context) error {
	venue, err := h.findVenue(c)
	if err != nil {
		return err
	}

	var req dto.VenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	form := forms.NewVenueForm(req.Name, req.Address, req.Capacity)
	if errs := form.Validate(); errs.Any() {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	if _, err := h.venueSvc.UpdateVenue(c.Request().Context(), venue.ID, req.Name, req.Address, req.Capacity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Venue updated successfully"})
}

func (h *APIHandler) DeleteVenue(c echo.Context) error {
	venue, err := h.findVenue(c)
	if err != nil {
		return err
	}
	if err := h.venueSvc.DeleteVenue(c.Request().Context(), venue.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Venue deleted successfully"})
}

// --- Shows ---

func (h *APIHandler) ListShows(c echo.Context) error {
	events, err := h.showSvc.ListShows(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]dto.ShowResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToShowResponse(&e)
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": resp})
}

func (h *APIHandler) GetShow(c echo.Context) error {
	event, err := h.findShow(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"show": dto.ToShowResponse(event)})
}

func (h *APIHandler) CreateShow(c echo.Context) error {
	var req dto.ShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	form := forms.NewEventForm(req.Name, req.VenueID, req.StartTime, req.EndTime, req.TicketPrice)
	errs := form.Validate()
	if !errs.Any() {
		if _, err := h.venueSvc.GetVenue(c.Request().Context(), form.VenueID); err != nil {
			errs.Add("venue", "Please select a venue.")
		}
	}
	if errs.Any() {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	event := &models.Event{
		Name:        form.Name,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		VenueID:     &form.VenueID,
		TicketPrice: form.TicketPrice,
	}
	if err := h.showSvc.CreateShow(c.Request().Context(), event); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Show created successfully"})
}

func (h *APIHandler) UpdateShow(c echo.Context) error {
	event, err := h.findShow(c)
	if err != nil {
		return err
	}

	var req dto.ShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	form := forms.NewEventForm(req.Name, req.VenueID, req.StartTime, req.EndTime, req.TicketPrice)
	errs := form.Validate()
	if !errs.Any() {
		if _, err := h.venueSvc.GetVenue(c.Request().Context(), form.VenueID); err != nil {
			errs.Add("venue", "Please select a venue.")
		}
	}
	if errs.Any() {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	if _, err := h.showSvc.UpdateShow(c.Request().Context(), event.ID, func(e *models.Event) {
		e.Name = form.Name
		e.StartTime = form.StartTime
		e.EndTime = form.EndTime
		e.VenueID = &form.VenueID
		e.TicketPrice = form.TicketPrice
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Show updated successfully"})
}

func (h *APIHandler) DeleteShow(c echo.Context) error {
	event, err := h.findShow(c)
	if err != nil {
		return err
	}
	if err := h.showSvc.DeleteShow(c.Request().Context(), event.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Show deleted successfully"})
}

// --- lookups ---

func (h *APIHandler) findVenue(c echo.Context) (*models.Venue, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}
	venue, err := h.venueSvc.GetVenue(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Venue not found")
		}
		return nil, err
	}
	return venue, nil
}

func (h *APIHandler) findShow(c echo.Context) (*models.Event, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid show id")
	}
	event, err := h.showSvc.GetShow(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrShowNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Show not found")
		}
		return nil, err
	}
	return event, nil
}
