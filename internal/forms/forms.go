package forms

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TimeLayout is the fixed timestamp format accepted by show forms.
const TimeLayout = "2006-01-02 15:04"

var validate = validator.New()

// Errors maps field names to user-facing validation messages. Mutating
// handlers never write anything while Errors is non-empty.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

const (
	msgRequired = "This field is required."
	msgEmail    = "Invalid email address."
)

func lengthMsg(min, max int) string {
	return fmt.Sprintf("Field must be between %d and %d characters long.", min, max)
}

func requireLength(errs Errors, field, value string, min, max int) {
	if value == "" {
		errs.Add(field, msgRequired)
		return
	}
	if len(value) < min || len(value) > max {
		errs.Add(field, lengthMsg(min, max))
	}
}

func requireEmail(errs Errors, field, value string) {
	if value == "" {
		errs.Add(field, msgRequired)
		return
	}
	if validate.Var(value, "email") != nil {
		errs.Add(field, msgEmail)
	}
}

// --- Buyer registration ---

type BuyerRegistrationForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func ParseBuyerRegistrationForm(c echo.Context) *BuyerRegistrationForm {
	return &BuyerRegistrationForm{
		Name:            strings.TrimSpace(c.FormValue("name")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		Phone:           strings.TrimSpace(c.FormValue("phone")),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
	}
}

func (f *BuyerRegistrationForm) Validate() Errors {
	errs := Errors{}
	requireLength(errs, "name", f.Name, 2, 20)
	requireEmail(errs, "email", f.Email)
	if f.Phone == "" {
		errs.Add("phone", msgRequired)
	}
	if f.Password == "" {
		errs.Add("password", msgRequired)
	}
	if f.ConfirmPassword == "" {
		errs.Add("confirm_password", msgRequired)
	} else if f.Password != f.ConfirmPassword {
		errs.Add("confirm_password", "Passwords must match.")
	}
	return errs
}

// --- Admin registration ---

type AdminRegistrationForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	VenueID         *uint

	venueIDRaw string
}

func ParseAdminRegistrationForm(c echo.Context) *AdminRegistrationForm {
	f := &AdminRegistrationForm{
		Username:        strings.TrimSpace(c.FormValue("username")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		venueIDRaw:      strings.TrimSpace(c.FormValue("venue_id")),
	}
	if f.venueIDRaw != "" {
		if id, err := strconv.ParseUint(f.venueIDRaw, 10, 32); err == nil {
			v := uint(id)
			f.VenueID = &v
		}
	}
	return f
}

func (f *AdminRegistrationForm) Validate() Errors {
	errs := Errors{}
	requireLength(errs, "username", f.Username, 2, 20)
	requireEmail(errs, "email", f.Email)
	if f.Password == "" {
		errs.Add("password", msgRequired)
	}
	if f.ConfirmPassword == "" {
		errs.Add("confirm_password", msgRequired)
	} else if f.Password != f.ConfirmPassword {
		errs.Add("confirm_password", "Passwords must match.")
	}
	if f.venueIDRaw != "" && f.VenueID == nil {
		errs.Add("venue_id", "Please enter a valid ID.")
	}
	return errs
}

// --- Login (both realms share the same rules) ---

type LoginForm struct {
	Email    string
	Password string
}

func ParseLoginForm(c echo.Context) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	requireEmail(errs, "email", f.Email)
	if f.Password == "" {
		errs.Add("password", msgRequired)
	}
	return errs
}

// --- Venue create ---

type VenueForm struct {
	Name     string
	Address  string
	Capacity int

	capacityRaw string
	parseErrs   Errors
}

func NewVenueForm(name, address string, capacity int) *VenueForm {
	return &VenueForm{Name: name, Address: address, Capacity: capacity, parseErrs: Errors{}}
}

func ParseVenueForm(c echo.Context) *VenueForm {
	f := &VenueForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Address:     strings.TrimSpace(c.FormValue("address")),
		capacityRaw: strings.TrimSpace(c.FormValue("capacity")),
		parseErrs:   Errors{},
	}
	if f.capacityRaw != "" {
		n, err := strconv.Atoi(f.capacityRaw)
		if err != nil {
			f.parseErrs.Add("capacity", "Capacity must be a number.")
		} else {
			f.Capacity = n
		}
	}
	return f
}

func (f *VenueForm) Validate() Errors {
	errs := Errors{}
	for field, msgs := range f.parseErrs {
		errs[field] = append(errs[field], msgs...)
	}
	requireLength(errs, "name", f.Name, 2, 50)
	requireLength(errs, "address", f.Address, 2, 50)
	if f.capacityRaw == "" && f.Capacity == 0 {
		errs.Add("capacity", msgRequired)
	} else if _, taken := errs["capacity"]; !taken && f.Capacity <= 0 {
		errs.Add("capacity", "Capacity must be a positive number.")
	}
	return errs
}

// --- Venue edit ---
//
// Capacity arrives as text, 1-4 digits; the original edit form validated it
// as a string length, not a numeric range.

type EditVenueForm struct {
	Name     string
	Address  string
	Capacity int

	capacityRaw string
}

func ParseEditVenueForm(c echo.Context) *EditVenueForm {
	f := &EditVenueForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Address:     strings.TrimSpace(c.FormValue("address")),
		capacityRaw: strings.TrimSpace(c.FormValue("capacity")),
	}
	if n, err := strconv.Atoi(f.capacityRaw); err == nil {
		f.Capacity = n
	}
	return f
}

func (f *EditVenueForm) Validate() Errors {
	errs := Errors{}
	requireLength(errs, "name", f.Name, 2, 50)
	requireLength(errs, "address", f.Address, 2, 50)
	if f.capacityRaw == "" {
		errs.Add("capacity", msgRequired)
	} else if len(f.capacityRaw) > 4 {
		errs.Add("capacity", lengthMsg(1, 4))
	} else if f.Capacity <= 0 {
		errs.Add("capacity", "Capacity must be a positive number.")
	}
	return errs
}

// --- Show (event) create/edit ---

var allowedImageExts = map[string]bool{".jpg": true, ".png": true}

// AllowedImage reports whether the uploaded filename carries an extension
// from the jpg/png allow-list.
func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

type EventForm struct {
	Name        string
	VenueID     uint
	StartTime   time.Time
	EndTime     time.Time
	TicketPrice float64
	ImageName   string // client filename of the optional upload

	venueRaw string
	startRaw string
	endRaw   string
	priceRaw string
}

func NewEventForm(name string, venueID uint, start, end string, price float64) *EventForm {
	return &EventForm{
		Name:        name,
		VenueID:     venueID,
		venueRaw:    strconv.FormatUint(uint64(venueID), 10),
		startRaw:    start,
		endRaw:      end,
		TicketPrice: price,
		priceRaw:    strconv.FormatFloat(price, 'f', -1, 64),
	}
}

func ParseEventForm(c echo.Context) *EventForm {
	f := &EventForm{
		Name:     strings.TrimSpace(c.FormValue("name")),
		venueRaw: strings.TrimSpace(c.FormValue("venue")),
		startRaw: strings.TrimSpace(c.FormValue("start_time")),
		endRaw:   strings.TrimSpace(c.FormValue("end_time")),
		priceRaw: strings.TrimSpace(c.FormValue("ticket_price")),
	}
	if id, err := strconv.ParseUint(f.venueRaw, 10, 32); err == nil {
		f.VenueID = uint(id)
	}
	if p, err := strconv.ParseFloat(f.priceRaw, 64); err == nil {
		f.TicketPrice = p
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f.ImageName = fh.Filename
	}
	return f
}

func (f *EventForm) Validate() Errors {
	errs := Errors{}
	requireLength(errs, "name", f.Name, 2, 50)

	if f.venueRaw == "" && f.VenueID == 0 {
		errs.Add("venue", msgRequired)
	} else if f.VenueID == 0 {
		errs.Add("venue", "Please select a venue.")
	}

	f.StartTime = parseTimestamp(errs, "start_time", f.startRaw)
	f.EndTime = parseTimestamp(errs, "end_time", f.endRaw)
	if !f.StartTime.IsZero() && !f.EndTime.IsZero() && !f.StartTime.Before(f.EndTime) {
		errs.Add("end_time", "End time must be after start time.")
	}

	if f.priceRaw == "" {
		errs.Add("ticket_price", msgRequired)
	} else if f.TicketPrice == 0 && !isNumeric(f.priceRaw) {
		errs.Add("ticket_price", "Ticket price must be a number.")
	} else if f.TicketPrice < 0 {
		errs.Add("ticket_price", "Ticket price must not be negative.")
	}

	if f.ImageName != "" && !AllowedImage(f.ImageName) {
		errs.Add("image", "Only jpg and png images are allowed.")
	}
	return errs
}

func parseTimestamp(errs Errors, field, raw string) time.Time {
	if raw == "" {
		errs.Add(field, msgRequired)
		return time.Time{}
	}
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		errs.Add(field, "Time must match the format YYYY-MM-DD HH:MM.")
		return time.Time{}
	}
	return t
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// --- Ticket purchase ---

type BuyTicketForm struct {
	Quantity int

	quantityRaw string
}

func ParseBuyTicketForm(c echo.Context) *BuyTicketForm {
	f := &BuyTicketForm{quantityRaw: strings.TrimSpace(c.FormValue("quantity"))}
	if n, err := strconv.Atoi(f.quantityRaw); err == nil {
		f.Quantity = n
	}
	return f
}

func (f *BuyTicketForm) Validate() Errors {
	errs := Errors{}
	if f.quantityRaw == "" {
		errs.Add("quantity", msgRequired)
	} else if f.Quantity < 1 {
		errs.Add("quantity", "Number must be at least 1.")
	}
	return errs
}
