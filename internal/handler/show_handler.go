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
	"github.com/Padmajasharma/Bookshow/internal/upload"
	"github.com/labstack/echo/v4"
)

type ShowHandler struct {
	showSvc   service.ShowService
	venueSvc  service.VenueService
	sess      *session.Manager
	uploadDir string
}

func NewShowHandler(showSvc service.ShowService, venueSvc service.VenueService, sess *session.Manager, uploadDir string) *ShowHandler {
	return &ShowHandler{showSvc: showSvc, venueSvc: venueSvc, sess: sess, uploadDir: uploadDir}
}

func (h *ShowHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/shows_list", h.ShowsList)

	g := e.Group("/admin", middleware.RequireAdmin)
	g.GET("", h.AdminDashboard)
	g.GET("/add_show", h.AddShowPage)
	g.POST("/add_show", h.AddShow)
	g.GET("/edit_show/:id", h.EditShowPage)
	g.POST("/edit_show/:id", h.EditShow)
	g.GET("/delete_show/:id", h.DeleteShowPage)
	g.POST("/delete_show/:id", h.DeleteShow)
}

func (h *ShowHandler) Home(c echo.Context) error {
	events, err := h.showSvc.ListShows(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home.html", pageData(c, h.sess, echo.Map{
		"Events": events,
	}))
}

func (h *ShowHandler) ShowsList(c echo.Context) error {
	events, err := h.showSvc.ListShows(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "shows_list.html", pageData(c, h.sess, echo.Map{
		"Events": events,
	}))
}

func (h *ShowHandler) AdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.venueSvc.ListVenues(ctx)
	if err != nil {
		return err
	}
	events, err := h.showSvc.ListShows(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin_dashboard.html", pageData(c, h.sess, echo.Map{
		"Venues": venues,
		"Events": events,
	}))
}

func (h *ShowHandler) AddShowPage(c echo.Context) error {
	venues, err := h.venueSvc.ListVenues(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "add_show.html", pageData(c, h.sess, echo.Map{
		"Form":   &forms.EventForm{},
		"Venues": venues,
	}))
}

func (h *ShowHandler) AddShow(c echo.Context) error {
	ctx := c.Request().Context()
	form := forms.ParseEventForm(c)
	errs := form.Validate()
	if !errs.Any() {
		if _, err := h.venueSvc.GetVenue(ctx, form.VenueID); err != nil {
			errs.Add("venue", "Please select a venue.")
		}
	}
	if errs.Any() {
		venues, err := h.venueSvc.ListVenues(ctx)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "add_show.html", pageData(c, h.sess, echo.Map{
			"Form":   form,
			"Errors": errs,
			"Venues": venues,
		}))
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	event := &models.Event{
		Name:        form.Name,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		Image:       image,
		VenueID:     &form.VenueID,
		TicketPrice: form.TicketPrice,
	}
	if ident := middleware.CurrentIdentity(c); ident != nil {
		event.AdminID = &ident.ID
	}
	if err := h.showSvc.CreateShow(ctx, event); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "Your show has been added!")
	return c.Redirect(http.StatusFound, "/admin")
}

func (h *ShowHandler) EditShowPage(c echo.Context) error {
	ctx := c.Request().Context()
	event, err := h.lookup(c)
	if err != nil {
		return err
	}
	venues, err := h.venueSvc.ListVenues(ctx)
	if err != nil {
		return err
	}

	var venueID uint
	if event.VenueID != nil {
		venueID = *event.VenueID
	}
	form := forms.NewEventForm(
		event.Name,
		venueID,
		event.StartTime.Format(forms.TimeLayout),
		event.EndTime.Format(forms.TimeLayout),
		event.TicketPrice,
	)
	return c.Render(http.StatusOK, "edit_show.html", pageData(c, h.sess, echo.Map{
		"Event":  event,
		"Form":   form,
		"Venues": venues,
	}))
}

func (h *ShowHandler) EditShow(c echo.Context) error {
	ctx := c.Request().Context()
	event, err := h.lookup(c)
	if err != nil {
		return err
	}

	form := forms.ParseEventForm(c)
	errs := form.Validate()
	if !errs.Any() {
		if _, err := h.venueSvc.GetVenue(ctx, form.VenueID); err != nil {
			errs.Add("venue", "Please select a venue.")
		}
	}
	if errs.Any() {
		venues, err := h.venueSvc.ListVenues(ctx)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "edit_show.html", pageData(c, h.sess, echo.Map{
			"Event":  event,
			"Form":   form,
			"Errors": errs,
			"Venues": venues,
		}))
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	if _, err := h.showSvc.UpdateShow(ctx, event.ID, func(e *models.Event) {
		e.Name = form.Name
		e.StartTime = form.StartTime
		e.EndTime = form.EndTime
		e.VenueID = &form.VenueID
		e.TicketPrice = form.TicketPrice
		if image != "" {
			e.Image = image
		}
	}); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "Your changes have been saved!")
	return c.Redirect(http.StatusFound, "/admin")
}

func (h *ShowHandler) DeleteShowPage(c echo.Context) error {
	event, err := h.lookup(c)
	if err != nil {
		return err
	}
	token, err := h.sess.NewConfirmToken(c, fmt.Sprintf("show:%d", event.ID))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "delete_show.html", pageData(c, h.sess, echo.Map{
		"Event": event,
		"Token": token,
	}))
}

func (h *ShowHandler) DeleteShow(c echo.Context) error {
	event, err := h.lookup(c)
	if err != nil {
		return err
	}

	if !h.sess.CheckConfirmToken(c, fmt.Sprintf("show:%d", event.ID), c.FormValue("confirm_token")) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid confirmation token")
	}

	if err := h.showSvc.DeleteShow(c.Request().Context(), event.ID); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "The event has been deleted.")
	return c.Redirect(http.StatusFound, "/shows_list")
}

// saveImage persists an optional upload and returns its stored filename,
// or "" when no file was sent.
func (h *ShowHandler) saveImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return "", nil
	}
	return upload.SavePicture(fh, h.uploadDir)
}

func (h *ShowHandler) lookup(c echo.Context) (*models.Event, error) {
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
