package handler

import (
	"net/http"

	"github.com/emzola/bookhaven/data/dto"
)

// Review endpoints are open: no token and no ownership check. Reviews are
// public content in this API.

// createReviewHandler handles POST /books/:bookId/review.
func (h *Handler) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID := h.readParam(r, "bookId")
	var body dto.CreateReviewRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	result, err := h.service.CreateReview(bookID, body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "review created successfully", "data": result}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateReviewHandler handles PUT /books/:bookId/review/:reviewId.
func (h *Handler) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID := h.readParam(r, "bookId")
	reviewID := h.readParam(r, "reviewId")
	var body dto.UpdateReviewRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	result, err := h.service.UpdateReview(bookID, reviewID, body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"status": true, "data": result}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteReviewHandler handles DELETE /books/:bookId/review/:reviewId.
func (h *Handler) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID := h.readParam(r, "bookId")
	reviewID := h.readParam(r, "reviewId")
	book, err := h.service.DeleteReview(bookID, reviewID)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"status": true, "data": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
