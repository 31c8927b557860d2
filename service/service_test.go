package service

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/emzola/bookhaven/config"
	"github.com/emzola/bookhaven/data"
	"github.com/emzola/bookhaven/internal/credential"
	"github.com/emzola/bookhaven/internal/jsonlog"
	"github.com/emzola/bookhaven/internal/mailer"
	"github.com/emzola/bookhaven/internal/token"
	"github.com/emzola/bookhaven/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRepo is an in-memory Repository with the same visibility rules as the
// real one: uniqueness spans deleted records, reads filter them out.
type fakeRepo struct {
	mu      sync.Mutex
	users   map[primitive.ObjectID]*data.User
	books   map[primitive.ObjectID]*data.Book
	reviews map[primitive.ObjectID]*data.Review
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   make(map[primitive.ObjectID]*data.User),
		books:   make(map[primitive.ObjectID]*data.Book),
		reviews: make(map[primitive.ObjectID]*data.Review),
	}
}

func (f *fakeRepo) CreateUser(user *data.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return repository.ErrDuplicateRecord
		}
	}
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeRepo) GetUserByID(id primitive.ObjectID) (*data.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeRepo) GetUserByEmail(email string) (*data.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeRepo) UserExistsWithPhone(phone string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UserExistsWithEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateBook(book *data.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.books {
		if b.Title == book.Title || b.ISBN == book.ISBN {
			return repository.ErrDuplicateRecord
		}
	}
	now := time.Now().UTC()
	book.ID = primitive.NewObjectID()
	book.CreatedAt = now
	book.UpdatedAt = now
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeRepo) GetBook(id primitive.ObjectID) (*data.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	book, ok := f.books[id]
	if !ok || book.IsDeleted {
		return nil, repository.ErrRecordNotFound
	}
	cp := *book
	return &cp, nil
}

func (f *fakeRepo) GetAllBooks(filter data.BookFilter) ([]*data.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	books := []*data.Book{}
	for _, b := range f.books {
		if b.IsDeleted {
			continue
		}
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		if filter.Subcategory != "" && b.Subcategory != filter.Subcategory {
			continue
		}
		cp := *b
		books = append(books, &cp)
	}
	return books, nil
}

func (f *fakeRepo) BookExistsWithTitle(title string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.books {
		if b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) BookExistsWithISBN(isbn string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.books {
		if b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UpdateBook(book *data.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[book.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	book.UpdatedAt = time.Now().UTC()
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeRepo) SetBookReviewCount(id primitive.ObjectID, reviews int) (*data.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	book, ok := f.books[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	book.Reviews = reviews
	book.UpdatedAt = time.Now().UTC()
	cp := *book
	return &cp, nil
}

func (f *fakeRepo) CreateReview(review *data.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	review.ID = primitive.NewObjectID()
	review.CreatedAt = now
	review.UpdatedAt = now
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeRepo) GetReviewForBook(reviewID, bookID primitive.ObjectID) (*data.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[reviewID]
	if !ok || review.BookID != bookID || review.IsDeleted {
		return nil, repository.ErrRecordNotFound
	}
	cp := *review
	return &cp, nil
}

func (f *fakeRepo) GetAllReviewsForBook(bookID primitive.ObjectID, includeDeleted bool) ([]*data.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reviews := []*data.Review{}
	for _, rv := range f.reviews {
		if rv.BookID != bookID {
			continue
		}
		if rv.IsDeleted && !includeDeleted {
			continue
		}
		cp := *rv
		reviews = append(reviews, &cp)
	}
	return reviews, nil
}

func (f *fakeRepo) UpdateReview(review *data.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[review.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	review.UpdatedAt = time.Now().UTC()
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

// newTestService wires a service onto a fake repository with email delivery
// disabled.
func newTestService(repo repository.Repository) *service {
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	tokens := token.NewService("ourSecret", 5*time.Hour)
	return New(config.Config{}, &wg, logger, repo, tokens, credential.Plaintext{}, mailer.Mailer{})
}

// seedUser registers a user directly against the repository.
func seedUser(repo *fakeRepo, email, phone string) *data.User {
	user := &data.User{
		Title:    "Mr",
		Name:     "Seed User",
		Phone:    phone,
		Email:    strings.ToLower(email),
		Password: "password123",
	}
	if err := repo.CreateUser(user); err != nil {
		panic(err)
	}
	return user
}

// seedBook stores a book owned by userID directly against the repository.
func seedBook(repo *fakeRepo, userID primitive.ObjectID, title, isbn string) *data.Book {
	book := &data.Book{
		Title:       title,
		Excerpt:     "an excerpt",
		UserID:      userID,
		ISBN:        isbn,
		Category:    "fiction",
		Subcategory: "thriller",
		ReleasedAt:  time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.CreateBook(book); err != nil {
		panic(err)
	}
	return book
}
