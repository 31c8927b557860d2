package dto

// CreateReviewRequestBody defines the request body for CreateReview.
// Rating is a pointer so a missing rating and an explicit zero produce
// different validation messages.
type CreateReviewRequestBody struct {
	ReviewedBy *string `json:"reviewedBy"`
	Rating     *int    `json:"rating"`
	Review     *string `json:"review"`
}

// UpdateReviewRequestBody defines the request body for UpdateReview.
// At least one field must be supplied.
type UpdateReviewRequestBody struct {
	ReviewedBy *string `json:"reviewedBy"`
	Rating     *int    `json:"rating"`
	Review     *string `json:"review"`
}
