package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/fringe-portal/authapi"
	"github.com/rs/zerolog/log"
)

const msgResetLinkFailed = "Error sending reset link"

type forgotPasswordForm struct {
	Email string `validate:"required,email"`
}

type ForgotPasswordPageData struct {
	pageData
	Email      string
	EmailError string
	Sent       bool
	LoginPath  string
}

func (s *Server) ForgotPasswordGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("forgot_password.html")

	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, tmpl, http.StatusOK, ForgotPasswordPageData{
			pageData:  s.newPageData(r, "Forgot Password"),
			LoginPath: RouteAdminLogin,
		})
	}
}

func (s *Server) ForgotPasswordPostHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("forgot_password.html")

	return func(w http.ResponseWriter, r *http.Request) {
		form := forgotPasswordForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
		data := ForgotPasswordPageData{
			pageData:  s.newPageData(r, "Forgot Password"),
			Email:     form.Email,
			LoginPath: RouteAdminLogin,
		}

		if err := s.validate.Struct(form); err != nil {
			data.EmailError = msgInvalidEmail
			renderPage(w, tmpl, http.StatusUnprocessableEntity, data)
			return
		}

		if err := s.auth.ForgotPassword(r.Context(), authapi.ForgotPasswordRequest{Email: form.Email}); err != nil {
			log.Err(err).Msg("Failed to request password reset")
			data.EmailError = msgResetLinkFailed
			renderPage(w, tmpl, http.StatusBadGateway, data)
			return
		}

		data.Sent = true
		renderPage(w, tmpl, http.StatusOK, data)
	}
}
