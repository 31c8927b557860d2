package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodPost, "/createUser", h.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/login", h.loginUserHandler)

	router.HandlerFunc(http.MethodPost, "/createBook", h.requireAuthentication(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/books", h.requireAuthentication(h.listBooksHandler))
	router.HandlerFunc(http.MethodGet, "/books/:bookId", h.requireAuthentication(h.showBookHandler))
	router.HandlerFunc(http.MethodPut, "/books/:bookId", h.requireBookOwnerPermission(h.updateBookHandler))
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", h.requireBookOwnerPermission(h.deleteBookHandler))

	router.HandlerFunc(http.MethodPost, "/books/:bookId/review", h.createReviewHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId/review/:reviewId", h.updateReviewHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId/review/:reviewId", h.deleteReviewHandler)

	router.HandlerFunc(http.MethodGet, "/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	return h.metrics(h.recoverPanic(h.enableCORS(router)))
}
