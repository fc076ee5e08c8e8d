package handler

import (
	"errors"
	"net/http"

	"github.com/Padmajasharma/Bookshow/internal/forms"
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc  service.AuthService
	sess *session.Manager
}

func NewAuthHandler(svc service.AuthService, sess *session.Manager) *AuthHandler {
	return &AuthHandler{svc: svc, sess: sess}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/user/signup", h.BuyerSignupPage)
	e.POST("/user/signup", h.BuyerSignup)
	e.GET("/user/login", h.BuyerLoginPage)
	e.POST("/user/login", h.BuyerLogin)
	e.GET("/admin/signup", h.AdminSignupPage)
	e.POST("/admin/signup", h.AdminSignup)
	e.GET("/admin/login", h.AdminLoginPage)
	e.POST("/admin/login", h.AdminLogin)
	e.GET("/logout", h.Logout)
}

func (h *AuthHandler) BuyerSignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "user_signup.html", pageData(c, h.sess, echo.Map{
		"Form": &forms.BuyerRegistrationForm{},
	}))
}

func (h *AuthHandler) BuyerSignup(c echo.Context) error {
	form := forms.ParseBuyerRegistrationForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, "user_signup.html", pageData(c, h.sess, echo.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	buyer := &models.Buyer{
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	}
	if err := h.svc.RegisterBuyer(c.Request().Context(), buyer, form.Password); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "Your account has been created! You are now able to log in")
	return c.Redirect(http.StatusFound, "/user/login")
}

func (h *AuthHandler) AdminSignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_signup.html", pageData(c, h.sess, echo.Map{
		"Form": &forms.AdminRegistrationForm{},
	}))
}

func (h *AuthHandler) AdminSignup(c echo.Context) error {
	form := forms.ParseAdminRegistrationForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, "admin_signup.html", pageData(c, h.sess, echo.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	admin := &models.Admin{
		Username: form.Username,
		Email:    form.Email,
		VenueID:  form.VenueID,
	}
	// Duplicate username/email violates a unique index and surfaces as a
	// server error, not a validation message.
	if err := h.svc.RegisterAdmin(c.Request().Context(), admin, form.Password); err != nil {
		return err
	}

	_ = h.sess.AddFlash(c, "success", "Congratulations, you are now a registered admin!")
	return c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AuthHandler) BuyerLoginPage(c echo.Context) error {
	if middleware.CurrentIdentity(c).IsBuyer() {
		return c.Redirect(http.StatusFound, "/user")
	}
	return c.Render(http.StatusOK, "user_login.html", pageData(c, h.sess, echo.Map{
		"Form": &forms.LoginForm{},
	}))
}

func (h *AuthHandler) BuyerLogin(c echo.Context) error {
	if middleware.CurrentIdentity(c).IsBuyer() {
		return c.Redirect(http.StatusFound, "/user")
	}
	return h.login(c, models.RoleBuyer, "user_login.html", "/user")
}

func (h *AuthHandler) AdminLoginPage(c echo.Context) error {
	if middleware.CurrentIdentity(c).IsAdmin() {
		return c.Redirect(http.StatusFound, "/admin")
	}
	return c.Render(http.StatusOK, "admin_login.html", pageData(c, h.sess, echo.Map{
		"Form": &forms.LoginForm{},
	}))
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	if middleware.CurrentIdentity(c).IsAdmin() {
		return c.Redirect(http.StatusFound, "/admin")
	}
	return h.login(c, models.RoleAdmin, "admin_login.html", "/admin")
}

func (h *AuthHandler) login(c echo.Context, realm models.Role, tmpl, target string) error {
	form := forms.ParseLoginForm(c)
	if errs := form.Validate(); errs.Any() {
		return c.Render(http.StatusOK, tmpl, pageData(c, h.sess, echo.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	ident, err := h.svc.Login(c.Request().Context(), realm, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			_ = h.sess.AddFlash(c, "danger", "Login Unsuccessful. Please check email and password")
			return c.Render(http.StatusOK, tmpl, pageData(c, h.sess, echo.Map{
				"Form": form,
			}))
		}
		return err
	}

	if err := h.sess.SetIdentity(c, *ident); err != nil {
		return err
	}
	_ = h.sess.AddFlash(c, "success", "You have been logged in!")
	return c.Redirect(http.StatusFound, target)
}

// Logout clears the session regardless of which realm was active.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sess.ClearIdentity(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
