package models

import "time"

type Admin struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Email    string  `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"size:60;not null" json:"-"` // bcrypt hash
	VenueID  *uint   `json:"venue_id,omitempty"`
	Events   []Event `gorm:"foreignKey:AdminID" json:"events,omitempty"`
}

type Venue struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Address  string  `gorm:"size:200;not null" json:"address"`
	Capacity int     `gorm:"not null" json:"capacity"`
	Events   []Event `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL" json:"events,omitempty"`
	Admins   []Admin `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL" json:"admins,omitempty"`
}

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	VenueID     *uint     `json:"venue_id"`
	AdminID     *uint     `json:"admin_id,omitempty"`
	TicketPrice float64   `gorm:"not null" json:"ticket_price"`
	Tickets     []Ticket  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

type Ticket struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	EventID uint `gorm:"not null;index" json:"event_id"`
	// Snapshot of the event's ticket price at purchase time.
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
	BuyerID  *uint   `gorm:"index" json:"buyer_id,omitempty"`
}

type Buyer struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"size:100;not null" json:"name"`
	Password string   `gorm:"size:60;not null" json:"-"` // bcrypt hash
	Email    string   `gorm:"size:100;not null" json:"email"`
	Phone    string   `gorm:"size:20;not null" json:"phone"`
	Tickets  []Ticket `gorm:"foreignKey:BuyerID" json:"tickets,omitempty"`
}
