package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Padmajasharma/Bookshow/internal/forms"
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc  service.VenueService
	sess *session.Manager
}

func NewVenueHandler(svc service.VenueService, sess *session.Manager) *VenueHandler {
	return &VenueHandler{svc: svc, sess: sess}
}

func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/venues_list", h.VenuesList)

	g := e.Group("/admin", middleware.RequireAdmin)
	g.GET("/add_venue", h.AddVenuePage)
	g.POST("/add_venue", h.AddVenue)
	g.GET("/edit_venue/:id", h.EditVenuePage)
	g.POST("/edit_venue/:id", h.EditVenue)
	g.GET("/delete_venue/:id", h.DeleteVenuePage)
	g.POST("/delete_venue/:id", h.DeleteVenue)
}

func (h *VenueHandler) VenuesList(c echo.Context) error {
	venues, err := h.svc.ListVenues(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "venues_list.html", pageData(c, h.sess, echo.Map{
		"Venues": venues,
	}))
}

func (h *VenueHandler) AddVenuePage(c echo.Context) error {
	return c.Render(http.StatusOK, "add_venue.html", pageData(c, h.sess, echo.Map{
		"Form": &forms.VenueForm{},
	}))
}

func (h *VenueHandler) AddVenue(c echo.Context) error {
	form := forms.ParseVenueForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, "add_venue.html", pageData(c, h.sess, echo.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	venue := &models.Venue{
		Name:     form.Name,
		Address:  form.Address,
		Capacity: form.Capacity,
	}
	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "The venue has been added.")
	return c.Redirect(http.StatusFound, "/venues_list")
}

func (h *VenueHandler) EditVenuePage(c echo.Context) error {
	venue, err := h.lookup(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "edit_venue.html", pageData(c, h.sess, echo.Map{
		"Venue": venue,
		"Form": &forms.EditVenueForm{
			Name:     venue.Name,
			Address:  venue.Address,
			Capacity: venue.Capacity,
		},
	}))
}

func (h *VenueHandler) EditVenue(c echo.Context) error {
	venue, err := h.lookup(c)
	if err != nil {
		return err
	}

	form := forms.ParseEditVenueForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, "edit_venue.html", pageData(c, h.sess, echo.Map{
			"Venue":  venue,
			"Form":   form,
			"Errors": errs,
		}))
	}

	if _, err := h.svc.UpdateVenue(c.Request().Context(), venue.ID, form.Name, form.Address, form.Capacity); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "The venue has been updated.")
	return c.Redirect(http.StatusFound, "/venues_list")
}

func (h *VenueHandler) DeleteVenuePage(c echo.Context) error {
	venue, err := h.lookup(c)
	if err != nil {
		return err
	}
	token, err := h.sess.NewConfirmToken(c, fmt.Sprintf("venue:%d", venue.ID))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "delete_venue.html", pageData(c, h.sess, echo.Map{
		"Venue": venue,
		"Token": token,
	}))
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	venue, err := h.lookup(c)
	if err != nil {
		return err
	}

	if !h.sess.CheckConfirmToken(c, fmt.Sprintf("venue:%d", venue.ID), c.FormValue("confirm_token")) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid confirmation token")
	}

	if err := h.svc.DeleteVenue(c.Request().Context(), venue.ID); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "The venue has been deleted.")
	return c.Redirect(http.StatusFound, "/venues_list")
}

func (h *VenueHandler) lookup(c echo.Context) (*models.Venue, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}
	venue, err := h.svc.GetVenue(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Venue not found")
		}
		return nil, err
	}
	return venue, nil
}
