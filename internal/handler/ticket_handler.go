package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Padmajasharma/Bookshow/internal/forms"
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/labstack/echo/v4"
)

type TicketHandler struct {
	ticketSvc service.TicketService
	showSvc   service.ShowService
	searchSvc service.SearchService
	sess      *session.Manager
}

func NewTicketHandler(ticketSvc service.TicketService, showSvc service.ShowService, searchSvc service.SearchService, sess *session.Manager) *TicketHandler {
	return &TicketHandler{ticketSvc: ticketSvc, showSvc: showSvc, searchSvc: searchSvc, sess: sess}
}

func (h *TicketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/user", h.UserDashboard, middleware.RequireBuyer)
	e.GET("/buy_ticket/:event_id", h.BuyTicketPage, middleware.RequireBuyer)
	e.POST("/buy_ticket/:event_id", h.BuyTicket, middleware.RequireBuyer)
	e.GET("/search", h.Search, middleware.RequireBuyer)
}

func (h *TicketHandler) UserDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.showSvc.ListShows(ctx)
	if err != nil {
		return err
	}
	ident := middleware.CurrentIdentity(c)
	tickets, err := h.ticketSvc.ListPurchases(ctx, ident.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "user_dashboard.html", pageData(c, h.sess, echo.Map{
		"Events":  events,
		"Tickets": tickets,
	}))
}

func (h *TicketHandler) BuyTicketPage(c echo.Context) error {
	event, err := h.lookupEvent(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "buy_ticket.html", pageData(c, h.sess, echo.Map{
		"Event": event,
		"Form":  &forms.BuyTicketForm{},
	}))
}

func (h *TicketHandler) BuyTicket(c echo.Context) error {
	event, err := h.lookupEvent(c)
	if err != nil {
		return err
	}

	form := forms.ParseBuyTicketForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, "buy_ticket.html", pageData(c, h.sess, echo.Map{
			"Event":  event,
			"Form":   form,
			"Errors": errs,
		}))
	}

	ident := middleware.CurrentIdentity(c)
	if _, err := h.ticketSvc.PurchaseTicket(c.Request().Context(), ident.ID, event.ID, form.Quantity); err != nil {
		if errors.Is(err, service.ErrShowNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Show not found")
		}
		return err
	}

	_ = h.sess.AddFlash(c, "success", "Ticket purchased successfully!")
	return c.Redirect(http.StatusFound, "/user")
}

func (h *TicketHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	result, err := h.searchSvc.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "search_results.html", pageData(c, h.sess, echo.Map{
		"Query":  query,
		"Venues": result.Venues,
		"Events": result.Events,
	}))
}

func (h *TicketHandler) lookupEvent(c echo.Context) (*models.Event, error) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
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
