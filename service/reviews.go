package service

import (
	"errors"
	"strings"

	"github.com/emzola/bookhaven/data"
	"github.com/emzola/bookhaven/data/dto"
	"github.com/emzola/bookhaven/internal/validator"
	"github.com/emzola/bookhaven/repository"
)

type reviews interface {
	CreateReview(bookID string, body dto.CreateReviewRequestBody) (*dto.BookWithReviewData, error)
	UpdateReview(bookID, reviewID string, body dto.UpdateReviewRequestBody) (*dto.BookWithReviewsData, error)
	DeleteReview(bookID, reviewID string) (*data.Book, error)
}

// CreateReview validates and stores a new review for a non-deleted book,
// bumping the book's review counter. The response data merges the updated
// book with every review recorded for it, deleted ones included; the create
// path has always returned the unfiltered list.
func (s *service) CreateReview(bookID string, body dto.CreateReviewRequestBody) (*dto.BookWithReviewData, error) {
	id, err := s.parseBookID(bookID, "bookId should be valid")
	if err != nil {
		return nil, err
	}
	if body == (dto.CreateReviewRequestBody{}) {
		return nil, s.validationFailure("Please provide valid data in request body")
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book exist with this ID")
		default:
			return nil, err
		}
	}
	if body.Rating == nil {
		return nil, s.validationFailure("Rating is required")
	}
	if !validator.ValidRating(*body.Rating) {
		return nil, s.validationFailure("Rating should be from 1 to 5")
	}
	if body.ReviewedBy != nil && *body.ReviewedBy != "" && strings.TrimSpace(*body.ReviewedBy) == "" {
		return nil, s.validationFailure("Reviewer's name should be valid")
	}
	review := &data.Review{
		BookID: book.ID,
		Rating: *body.Rating,
	}
	if body.ReviewedBy != nil {
		review.ReviewedBy = *body.ReviewedBy
	}
	if body.Review != nil {
		review.Review = *body.Review
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.SetBookReviewCount(book.ID, book.Reviews+1)
	if err != nil {
		return nil, err
	}
	all, err := s.repo.GetAllReviewsForBook(book.ID, true)
	if err != nil {
		return nil, err
	}
	return &dto.BookWithReviewData{Book: updated, ReviewData: all}, nil
}

// UpdateReview applies a partial update to a review under a book. Fields set
// to their zero value are ignored rather than rejected, so a rating of 0 is
// treated as absent; at least one usable field must remain.
func (s *service) UpdateReview(bookID, reviewID string, body dto.UpdateReviewRequestBody) (*dto.BookWithReviewsData, error) {
	id, err := s.parseBookID(bookID, "bookId should be valid")
	if err != nil {
		return nil, err
	}
	rid, err := s.parseBookID(reviewID, "reviewId should be valid")
	if err != nil {
		return nil, err
	}
	if body == (dto.UpdateReviewRequestBody{}) {
		return nil, s.validationFailure("Please provide valid data in request body")
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book exist with this ID")
		default:
			return nil, err
		}
	}
	review, err := s.repo.GetReviewForBook(rid, book.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No review exist with this for this book ID")
		default:
			return nil, err
		}
	}
	changed := false
	if body.ReviewedBy != nil && *body.ReviewedBy != "" {
		if strings.TrimSpace(*body.ReviewedBy) == "" {
			return nil, s.validationFailure("reviewedBy should have correct value")
		}
		review.ReviewedBy = *body.ReviewedBy
		changed = true
	}
	if body.Rating != nil && *body.Rating != 0 {
		if !validator.ValidRating(*body.Rating) {
			return nil, s.validationFailure("Rating should between 1 to 5")
		}
		review.Rating = *body.Rating
		changed = true
	}
	if body.Review != nil && *body.Review != "" {
		if strings.TrimSpace(*body.Review) == "" {
			return nil, s.validationFailure("review should have correct value")
		}
		review.Review = *body.Review
		changed = true
	}
	if !changed {
		return nil, s.validationFailure(" please provide correct data in request body")
	}
	err = s.repo.UpdateReview(review)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.GetAllReviewsForBook(book.ID, false)
	if err != nil {
		return nil, err
	}
	return &dto.BookWithReviewsData{Book: book, ReviewsData: active}, nil
}

// DeleteReview soft deletes a review and decrements the parent book's
// counter by one. The decrement is not clamped at zero; the counter drifts
// exactly the way the stored data says it should.
func (s *service) DeleteReview(bookID, reviewID string) (*data.Book, error) {
	id, err := s.parseBookID(bookID, "bookid should be valid")
	if err != nil {
		return nil, err
	}
	rid, err := s.parseBookID(reviewID, "reviewId should be valid")
	if err != nil {
		return nil, err
	}
	book, err := s.repo.GetBook(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No book found corressponding to this id")
		default:
			return nil, err
		}
	}
	review, err := s.repo.GetReviewForBook(rid, book.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, s.notFound("No review found corressponding to this id")
		default:
			return nil, err
		}
	}
	review.IsDeleted = true
	err = s.repo.UpdateReview(review)
	if err != nil {
		return nil, err
	}
	return s.repo.SetBookReviewCount(book.ID, book.Reviews-1)
}
