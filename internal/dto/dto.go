package dto

import (
	"time"

	"github.com/Padmajasharma/Bookshow/internal/models"
)

type VenueRequest struct {
	Name     string `json:"name" form:"name"`
	Address  string `json:"address" form:"address"`
	Capacity int    `json:"capacity" form:"capacity"`
}

// ShowRequest times use the same fixed YYYY-MM-DD HH:MM format as the
// server-rendered show forms.
type ShowRequest struct {
	Name        string  `json:"name" form:"name"`
	VenueID     uint    `json:"venue_id" form:"venue_id"`
	StartTime   string  `json:"start_time" form:"start_time"`
	EndTime     string  `json:"end_time" form:"end_time"`
	TicketPrice float64 `json:"ticket_price" form:"ticket_price"`
}

type VenueResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

type ShowResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	VenueID     *uint     `json:"venue_id"`
	TicketPrice float64   `json:"ticket_price"`
}

func ToVenueResponse(v *models.Venue) VenueResponse {
	return VenueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		Capacity: v.Capacity,
	}
}

func ToShowResponse(e *models.Event) ShowResponse {
	return ShowResponse{
		ID:          e.ID,
		Name:        e.Name,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		VenueID:     e.VenueID,
		TicketPrice: e.TicketPrice,
	}
}
