package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/emzola/bookhaven/data"
	"github.com/emzola/bookhaven/data/dto"
	"github.com/emzola/bookhaven/internal/validator"
	"github.com/emzola/bookhaven/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type books interface {
	CreateBook(authUserID string, body dto.CreateBookRequestBody) (*data.Book, error)
	ListBooks(qs dto.QsListBooks) ([]*data.BookSummary, error)
	GetBook(bookID string) (*data.Book, error)
	GetBookWithReviews(bookID string) (*dto.BookWithReviewsData, error)
	UpdateBook(bookID, authUserID string, body dto.UpdateBookRequestBody) (*data.Book, error)
	DeleteBook(bookID, authUserID string) error
}

// CreateBook validates a new book, confirms the target user exists and that
// the caller is creating the book under their own identity, then stores it.
// Title and ISBN must be unique across all books, deleted ones included.
func (s *service) CreateBook(authUserID string, body dto.CreateBookRequestBody) (*data.Book, error) {
	if body == (dto.CreateBookRequestBody{}) {
		return nil, s.validationFailure("Please provide valid request body")
	}
	v := validator.New()
	title := strings.TrimSpace(body.Title)
	v.Check(validator.NotBlank(body.Title), "title", "Title is required")
	if validator.NotBlank(body.Title) {
		exists, err := s.repo.BookExistsWithTitle(title)
		if err != nil {
			return nil, err
		}
		v.Check(!exists, "title", "Title is already in use, try something different")
	}
	v.Check(validator.NotBlank(body.Excerpt), "excerpt", "Excerpt is required")
	v.Check(validator.NotBlank(body.UserID), "userId", "userId is required")
	if validator.NotBlank(body.UserID) {
		v.Check(validator.ValidObjectID(body.UserID), "userId", "userId should be valid")
	}
	isbn := strings.TrimSpace(body.ISBN)
	v.Check(validator.NotBlank(body.ISBN), "ISBN", "ISBN is required")
	if validator.NotBlank(body.ISBN) {
		exists, err := s.repo.BookExistsWithISBN(isbn)
		if err != nil {
			return nil, err
		}
		v.Check(!exists, "ISBN", "ISBN is already in use, try something different")
	}
	v.Check(validator.NotBlank(body.Category), "category", "category is required")
	v.Check(validator.NotBlank(body.Subcategory), "subcategory", "subcategory is required")
	v.Check(validator.NotBlank(body.ReleasedAt), "releasedAt", "releasedAt is required")
	var releasedAt time.Time
	if validator.NotBlank(body.ReleasedAt) {
		var err error
		releasedAt, err = data.ParseReleaseDate(body.ReleasedAt)
		v.Check(err == nil, "releasedAt", `releasedAt should be an date and format("YYYY-MM-DD")`)
	}
	if !v.Valid() {
		return nil, s.failedValidation(v)
	}
	userID, err := primitive.ObjectIDFromHex(body.UserID)
	if err != nil {
		return nil, s.validationFailure("userId should be valid")
	}
	_, err = s.repo.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("User doesn't exist")
		default:
			return nil, err
		}
	}
	// A valid token only lets you create books under your own user ID.
	if body.UserID != authUserID {
		return nil, s.notPermitted()
	}
	book := &data.Book{
		Title:       title,
		Excerpt:     body.Excerpt,
		UserID:      userID,
		ISBN:        isbn,
		Category:    body.Category,
		Subcategory: body.Subcategory,
		Reviews:     0,
		ReleasedAt:  releasedAt,
	}
	err = s.repo.CreateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, s.validationFailure("Title is already in use, try something different")
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks returns summaries of all non-deleted books matching the
// query-string filters, sorted by title in descending order ignoring case.
func (s *service) ListBooks(qs dto.QsListBooks) ([]*data.BookSummary, error) {
	var filter data.BookFilter
	if qs.UserID != "" {
		if !validator.ValidObjectID(qs.UserID) {
			return nil, s.badRequest("userId should be valid")
		}
		userID, err := primitive.ObjectIDFromHex(qs.UserID)
		if err != nil {
			return nil, s.badRequest("userId should be valid")
		}
		filter.UserID = &userID
	}
	filter.Category = qs.Category
	filter.Subcategory = qs.Subcategory
	all, err := s.repo.GetAllBooks(filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Title) > strings.ToLower(all[j].Title)
	})
	summaries := make([]*data.BookSummary, 0, len(all))
	for _, book := range all {
		summaries = append(summaries, book.Summary())
	}
	return summaries, nil
}

// GetBook retrieves a single non-deleted book by its ID.
func (s *service) GetBook(bookID string) (*data.Book, error) {
	id, err := s.parseBookID(bookID, "bookId should be valid")
	if err != nil {
		return nil, err
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book found")
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBookWithReviews retrieves a book along with its non-deleted reviews.
func (s *service) GetBookWithReviews(bookID string) (*dto.BookWithReviewsData, error) {
	book, err := s.GetBook(bookID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.GetAllReviewsForBook(book.ID, false)
	if err != nil {
		return nil, err
	}
	return &dto.BookWithReviewsData{Book: book, ReviewsData: reviews}, nil
}

// UpdateBook applies a partial update to a book owned by the caller. Only
// title, excerpt, ISBN and releasedAt can change; fields set to the empty
// string are ignored rather than rejected, and a changed title or ISBN is
// re-checked for uniqueness, with the book's current values exempt.
func (s *service) UpdateBook(bookID, authUserID string, body dto.UpdateBookRequestBody) (*data.Book, error) {
	id, err := s.parseBookID(bookID, "bookId should be valid")
	if err != nil {
		return nil, err
	}
	if body == (dto.UpdateBookRequestBody{}) {
		return nil, s.validationFailure("Please provide valid data in request body")
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book found")
		default:
			return nil, err
		}
	}
	// Ownership is decided before looking at the payload, so a non-owner
	// learns nothing about which fields would have been accepted.
	if book.UserID.Hex() != authUserID {
		return nil, s.notPermitted()
	}
	changed := false
	if body.Title != nil && *body.Title != "" {
		title := strings.TrimSpace(*body.Title)
		if title == "" {
			return nil, s.validationFailure("Title should have some value")
		}
		if title != book.Title {
			exists, err := s.repo.BookExistsWithTitle(title)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, s.validationFailure("Title is already in use, try something different")
			}
		}
		book.Title = title
		changed = true
	}
	if body.Excerpt != nil && *body.Excerpt != "" {
		if strings.TrimSpace(*body.Excerpt) == "" {
			return nil, s.validationFailure("excerpt should have some value")
		}
		book.Excerpt = *body.Excerpt
		changed = true
	}
	if body.ISBN != nil && *body.ISBN != "" {
		isbn := strings.TrimSpace(*body.ISBN)
		if isbn == "" {
			return nil, s.validationFailure("ISBN should have some value")
		}
		if isbn != book.ISBN {
			exists, err := s.repo.BookExistsWithISBN(isbn)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, s.validationFailure("ISBN is already in use, try something different")
			}
		}
		book.ISBN = isbn
		changed = true
	}
	if body.ReleasedAt != nil && *body.ReleasedAt != "" {
		releasedAt, err := data.ParseReleaseDate(*body.ReleasedAt)
		if err != nil {
			return nil, s.validationFailure(`releasedAt should be an date and format("YYYY-MM-DD")`)
		}
		book.ReleasedAt = releasedAt
		changed = true
	}
	if !changed {
		return nil, s.validationFailure("Please provide correct updating data ")
	}
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book found")
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, s.validationFailure("Title is already in use, try something different")
		default:
			return nil, err
		}
	}
	return book, nil
}

// DeleteBook soft deletes a book owned by the caller. The record stays in
// the store with its title and ISBN still reserved.
func (s *service) DeleteBook(bookID, authUserID string) error {
	id, err := s.parseBookID(bookID, "bookId should be valid")
	if err != nil {
		return err
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return s.notFound("No book found")
		default:
			return err
		}
	}
	if book.UserID.Hex() != authUserID {
		return s.notPermitted()
	}
	now := time.Now().UTC()
	book.IsDeleted = true
	book.DeletedAt = &now
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return s.notFound("No book found")
		default:
			return err
		}
	}
	return nil
}

// parseBookID converts a path parameter into an ObjectID, reporting msg as
// a bad request for anything malformed.
func (s *service) parseBookID(bookID, msg string) (primitive.ObjectID, error) {
	if !validator.ValidObjectID(bookID) {
		return primitive.NilObjectID, s.badRequest(msg)
	}
	id, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return primitive.NilObjectID, s.badRequest(msg)
	}
	return id, nil
}
