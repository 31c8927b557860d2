package handler

import (
	"net/http"

	"github.com/emzola/bookhaven/data/dto"
)

// registerUserHandler handles POST /createUser.
func (h *Handler) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateUserRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.RegisterUser(body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"status": true, "data": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// loginUserHandler handles POST /login. The signed token rides at the top
// level of the envelope under jwt_token, where clients have always read it.
func (h *Handler) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var body dto.LoginRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	jwtToken, err := h.service.LoginUser(body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "success", "jwt_token": jwtToken}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
