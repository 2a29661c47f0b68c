package server

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/fringe-portal/authapi"
	"github.com/jrsteele09/fringe-portal/gate"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/rs/zerolog/log"
)

// Messages shown on the login form
const (
	msgInvalidEmail       = "Please enter a valid email address"
	msgShortPassword      = "Password must be at least 6 characters"
	msgInvalidCredentials = "Invalid email or password"
	msgAdminsOnly         = "This area is restricted to administrators only."
	msgSomethingWrong     = "Something went wrong. Please try again."
)

// loginPage describes one of the two login forms.
type loginPage struct {
	Title              string
	Action             string
	ForgotPasswordPath string
}

var (
	adminLoginPage = loginPage{
		Title:              "Admin Login",
		Action:             RouteAdminLogin,
		ForgotPasswordPath: RouteAdminForgotPassword,
	}
	customerLoginPage = loginPage{
		Title:  "Login",
		Action: RouteLogin,
	}
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type loginErrors struct {
	Email    string
	Password string
	General  string
}

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	pageData
	Page        loginPage
	Email       string // Preserve email on error
	CallbackURL string
	Errors      loginErrors
}

// LoginPageHandler displays a login form
func (s *Server) LoginPageHandler(page loginPage) http.HandlerFunc {
	loginTmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			pageData:    s.newPageData(r, page.Title),
			Page:        page,
			Email:       r.URL.Query().Get("email"),
			CallbackURL: r.URL.Query().Get(gate.CallbackParam),
		}
		renderPage(w, loginTmpl, http.StatusOK, data)
	}
}

// LoginSubmissionHandler validates the form and logs the user in. On success
// the auth context has already redirected to the landing page.
func (s *Server) LoginSubmissionHandler(page loginPage) http.HandlerFunc {
	loginTmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := loginForm{
			Email:    strings.TrimSpace(r.PostFormValue("email")),
			Password: r.PostFormValue("password"),
		}
		data := LoginPageData{
			pageData:    s.newPageData(r, page.Title),
			Page:        page,
			Email:       form.Email,
			CallbackURL: r.PostFormValue(gate.CallbackParam),
		}

		if err := s.validate.Struct(form); err != nil {
			data.Errors = loginFieldErrors(err)
			renderPage(w, loginTmpl, http.StatusUnprocessableEntity, data)
			return
		}

		provider := providerFrom(r)
		if provider == nil {
			http.Error(w, "Auth context missing", http.StatusInternalServerError)
			return
		}

		err := provider.Login(r.Context(), form.Email, form.Password)
		switch {
		case err == nil:
			return
		case errors.Is(err, errors.ErrNotAdmin):
			data.Errors.General = msgAdminsOnly
			renderPage(w, loginTmpl, http.StatusForbidden, data)
		case authapi.IsAuthFailure(err):
			data.Errors.Email = msgInvalidCredentials
			renderPage(w, loginTmpl, http.StatusUnauthorized, data)
		default:
			log.Err(err).Str("path", r.URL.Path).Msg("Login failed")
			data.Errors.General = msgSomethingWrong
			renderPage(w, loginTmpl, http.StatusBadGateway, data)
		}
	}
}

// LogoutHandler clears the session. The auth context redirects to the login page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := providerFrom(r)
		if provider == nil {
			http.Error(w, "Auth context missing", http.StatusInternalServerError)
			return
		}
		provider.Logout()
	}
}

func loginFieldErrors(err error) loginErrors {
	var errs loginErrors
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.General = msgSomethingWrong
		return errs
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			errs.Email = msgInvalidEmail
		case "Password":
			errs.Password = msgShortPassword
		}
	}
	return errs
}
