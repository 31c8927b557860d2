package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookhaven/service"
)

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

// errorResponse writes the standard failure envelope {status: false, message}.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"status": false, "message": message}
	err := h.encodeJSON(w, status, env, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(500)
	}
}

// serverErrorResponse logs the error and surfaces its raw message to the
// client. This API has always exposed underlying failure messages.
func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, err.Error())
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) missingAuthHeaderResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusUnauthorized, "Mandatory header is missing")
}

func (h *Handler) invalidAuthTokenResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusUnauthorized, "Please provide valid token")
}

func (h *Handler) invalidBasicAuthResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusUnauthorized, "invalid authentication credentials")
}

// serviceErrorResponse maps an error from the service layer onto the status
// code its sentinel calls for, passing the message through verbatim.
func (h *Handler) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrFailedValidation), errors.Is(err, service.ErrBadRequest):
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRecordNotFound):
		h.errorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotPermitted), errors.Is(err, service.ErrInvalidCredentials):
		h.errorResponse(w, r, http.StatusUnauthorized, err.Error())
	default:
		h.serverErrorResponse(w, r, err)
	}
}
