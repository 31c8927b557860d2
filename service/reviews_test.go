package service

import (
	"testing"

	"github.com/emzola/bookhaven/data/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestCreateReview(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")

	body := dto.CreateReviewRequestBody{
		ReviewedBy: strPtr("Jane Reader"),
		Rating:     intPtr(5),
		Review:     strPtr("Loved it"),
	}
	result, err := s.CreateReview(book.ID.Hex(), body)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reviews, "counter is incremented by exactly one")
	require.Len(t, result.ReviewData, 1)
	assert.Equal(t, "Jane Reader", result.ReviewData[0].ReviewedBy)
	assert.Equal(t, 5, result.ReviewData[0].Rating)

	result, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Reviews)
	assert.Len(t, result.ReviewData, 2)
}

func TestCreateReviewValidation(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")

	_, err := s.CreateReview("bogus", dto.CreateReviewRequestBody{Rating: intPtr(3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bookId should be valid", err.Error())

	_, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{})
	require.Error(t, err)
	assert.Equal(t, "Please provide valid data in request body", err.Error())

	_, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Review: strPtr("no rating")})
	require.Error(t, err)
	assert.Equal(t, "Rating is required", err.Error())

	_, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(6)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedValidation)
	assert.Equal(t, "Rating should be from 1 to 5", err.Error())

	_, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(0)})
	require.Error(t, err)
	assert.Equal(t, "Rating should be from 1 to 5", err.Error())

	_, err = s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{
		Rating:     intPtr(3),
		ReviewedBy: strPtr("   "),
	})
	require.Error(t, err)
	assert.Equal(t, "Reviewer's name should be valid", err.Error())
}

func TestCreateReviewOnDeletedBook(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "gone", "111-1")
	require.NoError(t, s.DeleteBook(book.ID.Hex(), owner.ID.Hex()))

	_, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "No book exist with this ID", err.Error())
}

func TestCreateReviewResponseIncludesDeletedReviews(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")

	first, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(2)})
	require.NoError(t, err)
	_, err = s.DeleteReview(book.ID.Hex(), first.ReviewData[0].ID.Hex())
	require.NoError(t, err)

	// The create response carries the full unfiltered list.
	second, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(4)})
	require.NoError(t, err)
	assert.Len(t, second.ReviewData, 2)
}

func TestUpdateReview(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")
	created, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{
		ReviewedBy: strPtr("Jane Reader"),
		Rating:     intPtr(2),
	})
	require.NoError(t, err)
	reviewID := created.ReviewData[0].ID

	result, err := s.UpdateReview(book.ID.Hex(), reviewID.Hex(), dto.UpdateReviewRequestBody{Rating: intPtr(5)})
	require.NoError(t, err)
	require.Len(t, result.ReviewsData, 1)
	assert.Equal(t, 5, result.ReviewsData[0].Rating)
	assert.Equal(t, "Jane Reader", result.ReviewsData[0].ReviewedBy, "unsupplied fields keep their values")
}

func TestUpdateReviewValidation(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")
	created, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(2)})
	require.NoError(t, err)
	reviewID := created.ReviewData[0].ID.Hex()

	_, err = s.UpdateReview("bogus", reviewID, dto.UpdateReviewRequestBody{Rating: intPtr(5)})
	require.Error(t, err)
	assert.Equal(t, "bookId should be valid", err.Error())

	_, err = s.UpdateReview(book.ID.Hex(), "bogus", dto.UpdateReviewRequestBody{Rating: intPtr(5)})
	require.Error(t, err)
	assert.Equal(t, "reviewId should be valid", err.Error())

	_, err = s.UpdateReview(book.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{})
	require.Error(t, err)
	assert.Equal(t, "Please provide valid data in request body", err.Error())

	_, err = s.UpdateReview(book.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{Rating: intPtr(7)})
	require.Error(t, err)
	assert.Equal(t, "Rating should between 1 to 5", err.Error())

	// A zero rating counts as absent, so a body with nothing else in it
	// has no usable field.
	_, err = s.UpdateReview(book.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{Rating: intPtr(0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedValidation)
	assert.Equal(t, " please provide correct data in request body", err.Error())

	_, err = s.UpdateReview(book.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{ReviewedBy: strPtr("  ")})
	require.Error(t, err)
	assert.Equal(t, "reviewedBy should have correct value", err.Error())

	_, err = s.UpdateReview(book.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{Review: strPtr("  ")})
	require.Error(t, err)
	assert.Equal(t, "review should have correct value", err.Error())
}

func TestUpdateReviewScopedToBook(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	bookA := seedBook(repo, owner.ID, "book a", "111-1")
	bookB := seedBook(repo, owner.ID, "book b", "111-2")
	created, err := s.CreateReview(bookA.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(2)})
	require.NoError(t, err)
	reviewID := created.ReviewData[0].ID.Hex()

	// A review ID belonging to another book is a miss, not a cross-book edit.
	_, err = s.UpdateReview(bookB.ID.Hex(), reviewID, dto.UpdateReviewRequestBody{Rating: intPtr(5)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "No review exist with this for this book ID", err.Error())
}

func TestDeleteReview(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")
	created, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(2)})
	require.NoError(t, err)
	reviewID := created.ReviewData[0].ID.Hex()

	updated, err := s.DeleteReview(book.ID.Hex(), reviewID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Reviews, "counter is decremented by exactly one")

	// The review is soft deleted, so deleting it again is a miss.
	_, err = s.DeleteReview(book.ID.Hex(), reviewID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "No review found corressponding to this id", err.Error())
}

func TestDeleteReviewValidation(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")

	_, err := s.DeleteReview("bogus", "64bfc3f09f1b2e0012345678")
	require.Error(t, err)
	assert.Equal(t, "bookid should be valid", err.Error())

	_, err = s.DeleteReview("64bfc3f09f1b2e0012345678", "64bfc3f09f1b2e0012345678")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "No book found corressponding to this id", err.Error())

	_, err = s.DeleteReview(book.ID.Hex(), "64bfc3f09f1b2e0012345678")
	require.Error(t, err)
	assert.Equal(t, "No review found corressponding to this id", err.Error())
}

func TestDeleteReviewDoesNotClampCounter(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	owner := seedUser(repo, "owner@example.com", "9876543210")
	book := seedBook(repo, owner.ID, "reviewed", "111-1")
	created, err := s.CreateReview(book.ID.Hex(), dto.CreateReviewRequestBody{Rating: intPtr(2)})
	require.NoError(t, err)
	reviewID := created.ReviewData[0].ID.Hex()

	// Force the stored counter out of sync, the way a lost increment would.
	_, err = repo.SetBookReviewCount(book.ID, 0)
	require.NoError(t, err)

	updated, err := s.DeleteReview(book.ID.Hex(), reviewID)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Reviews, "decrement is applied without clamping at zero")
}
