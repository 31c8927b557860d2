package handler

import (
	"net/http"

	"github.com/emzola/bookhaven/data/dto"
)

// createBookHandler handles POST /createBook.
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	userID := h.contextGetUserID(r)
	var body dto.CreateBookRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(userID, body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "Success", "data": book}
	err = h.encodeJSON(w, http.StatusCreated, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	filters := dto.QsListBooks{
		UserID:      qs.Get("userId"),
		Category:    qs.Get("category"),
		Subcategory: qs.Get("subcategory"),
	}
	books, err := h.service.ListBooks(filters)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "Books list", "data": books}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:bookId.
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID := h.readParam(r, "bookId")
	book, err := h.service.GetBookWithReviews(bookID)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "Books list", "data": book}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:bookId.
func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	userID := h.contextGetUserID(r)
	bookID := h.readParam(r, "bookId")
	var body dto.UpdateBookRequestBody
	err := h.decodeJSON(w, r, &body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.UpdateBook(bookID, userID, body)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "Book details updated successfully", "data": book}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	userID := h.contextGetUserID(r)
	bookID := h.readParam(r, "bookId")
	err := h.service.DeleteBook(bookID, userID)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}
	env := envelope{"status": true, "message": "Book deleted successfully"}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
