package repository

import (
	"context"
	"errors"
	"time"

	"github.com/emzola/bookhaven/data"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(id primitive.ObjectID) (*data.Book, error)
	GetAllBooks(filter data.BookFilter) ([]*data.Book, error)
	BookExistsWithTitle(title string) (bool, error)
	BookExistsWithISBN(isbn string) (bool, error)
	UpdateBook(book *data.Book) error
	SetBookReviewCount(id primitive.ObjectID, reviews int) (*data.Book, error)
}

// CreateBook inserts a new book record and fills in its generated ID and
// timestamps.
func (r *repository) CreateBook(book *data.Book) error {
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	res, err := r.db.Collection("books").InsertOne(ctx, book)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	book.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetBook retrieves a non-deleted book record by its ID.
func (r *repository) GetBook(id primitive.ObjectID) (*data.Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	var book data.Book
	err := r.db.Collection("books").FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&book)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves all non-deleted books matching the equality filters.
func (r *repository) GetAllBooks(filter data.BookFilter) ([]*data.Book, error) {
	query := bson.M{"isDeleted": false}
	if filter.UserID != nil {
		query["userId"] = *filter.UserID
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Subcategory != "" {
		query["subcategory"] = filter.Subcategory
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	cursor, err := r.db.Collection("books").Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	books := []*data.Book{}
	err = cursor.All(ctx, &books)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// BookExistsWithTitle reports whether any book record, deleted or not,
// carries the title. Soft-deleted books keep their title reserved.
func (r *repository) BookExistsWithTitle(title string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	count, err := r.db.Collection("books").CountDocuments(ctx, bson.M{"title": title})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// BookExistsWithISBN reports whether any book record, deleted or not,
// carries the ISBN.
func (r *repository) BookExistsWithISBN(isbn string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	count, err := r.db.Collection("books").CountDocuments(ctx, bson.M{"ISBN": isbn})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateBook writes the mutable fields of a book record back to the store.
func (r *repository) UpdateBook(book *data.Book) error {
	book.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":      book.Title,
		"excerpt":    book.Excerpt,
		"ISBN":       book.ISBN,
		"releasedAt": book.ReleasedAt,
		"isDeleted":  book.IsDeleted,
		"deletedAt":  book.DeletedAt,
		"updatedAt":  book.UpdatedAt,
	}}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	res, err := r.db.Collection("books").UpdateByID(ctx, book.ID, update)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SetBookReviewCount stores a new review counter for a book and returns the
// updated record. The caller computes the counter from a previously read
// value, so concurrent writers can lose an increment; that matches the
// system this one replaces.
func (r *repository) SetBookReviewCount(id primitive.ObjectID, reviews int) (*data.Book, error) {
	update := bson.M{"$set": bson.M{
		"reviews":   reviews,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	var book data.Book
	err := r.db.Collection("books").
		FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).
		Decode(&book)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}
