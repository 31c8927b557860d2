package data

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDate is returned by ParseReleaseDate for a value that cannot be
// interpreted as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Book defines a book record. Books are soft deleted: IsDeleted flips to
// true and DeletedAt is set, but the document is never removed, and title
// and ISBN uniqueness is enforced across deleted records too.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ISBN        string             `bson:"ISBN" json:"ISBN"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	// Reviews is a denormalized count of active reviews, maintained by
	// increment and decrement rather than recomputation.
	Reviews    int        `bson:"reviews" json:"reviews"`
	ReleasedAt time.Time  `bson:"releasedAt" json:"releasedAt"`
	IsDeleted  bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt  *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BookFilter holds the optional equality filters applied when listing
// non-deleted books.
type BookFilter struct {
	UserID      *primitive.ObjectID
	Category    string
	Subcategory string
}

// BookSummary is the trimmed shape returned by the book listing: no ISBN,
// subcategory, deletion bookkeeping or timestamps.
type BookSummary struct {
	ID         primitive.ObjectID `json:"_id"`
	Title      string             `json:"title"`
	Excerpt    string             `json:"excerpt"`
	UserID     primitive.ObjectID `json:"userId"`
	Category   string             `json:"category"`
	Reviews    int                `json:"reviews"`
	ReleasedAt time.Time          `json:"releasedAt"`
}

// Summary projects a Book into its listing shape.
func (b *Book) Summary() *BookSummary {
	return &BookSummary{
		ID:         b.ID,
		Title:      b.Title,
		Excerpt:    b.Excerpt,
		UserID:     b.UserID,
		Category:   b.Category,
		Reviews:    b.Reviews,
		ReleasedAt: b.ReleasedAt,
	}
}

// ParseReleaseDate parses a release date supplied by a client. The expected
// format is "YYYY-MM-DD"; full RFC 3339 timestamps are accepted too.
func ParseReleaseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
