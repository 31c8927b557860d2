package dto

import "github.com/emzola/bookhaven/data"

// CreateBookRequestBody defines the request body for CreateBook. The userId
// field must match the authenticated identity.
type CreateBookRequestBody struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	UserID      string `json:"userId"`
	ISBN        string `json:"ISBN"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	ReleasedAt  string `json:"releasedAt"`
}

// UpdateBookRequestBody defines the request body for UpdateBook. Fields are
// pointers so absent fields are left untouched by the partial update.
type UpdateBookRequestBody struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	ISBN       *string `json:"ISBN"`
	ReleasedAt *string `json:"releasedAt"`
}

// QsListBooks defines the query-string filters accepted by the book listing.
type QsListBooks struct {
	UserID      string
	Category    string
	Subcategory string
}

// BookWithReviewsData is a book merged with a review list under the
// "reviewsData" key, as returned by book detail and review update.
type BookWithReviewsData struct {
	*data.Book
	ReviewsData []*data.Review `json:"reviewsData"`
}

// BookWithReviewData is the same merge under the singular "reviewData" key.
// Review creation has always responded with this key; clients depend on it.
type BookWithReviewData struct {
	*data.Book
	ReviewData []*data.Review `json:"reviewData"`
}
