package service

import (
	"errors"
	"strings"

	"github.com/emzola/bookhaven/data"
	"github.com/emzola/bookhaven/data/dto"
	"github.com/emzola/bookhaven/internal/validator"
	"github.com/emzola/bookhaven/repository"
)

type users interface {
	RegisterUser(body dto.CreateUserRequestBody) (*data.User, error)
	LoginUser(body dto.LoginRequestBody) (string, error)
	VerifyToken(tokenString string) (string, error)
}

// RegisterUser validates a registration request, checks phone and email
// uniqueness and creates the user record. Emails are stored lowercased so
// uniqueness and login are case-insensitive.
func (s *service) RegisterUser(body dto.CreateUserRequestBody) (*data.User, error) {
	if body == (dto.CreateUserRequestBody{}) {
		return nil, s.validationFailure("Please provide valid request body")
	}
	v := validator.New()
	v.Check(validator.NotBlank(body.Title), "title", "Title is required")
	if validator.NotBlank(body.Title) {
		v.Check(validator.ValidHonorific(body.Title), "title", "Title should be among Mr, Mrs and Miss")
	}
	v.Check(validator.NotBlank(body.Name), "name", "name is required")
	v.Check(validator.NotBlank(body.Phone), "phone", "phone is required")
	if validator.NotBlank(body.Phone) {
		v.Check(validator.ValidPhone(body.Phone), "phone", "provide valid phone number")
		if validator.ValidPhone(body.Phone) {
			exists, err := s.repo.UserExistsWithPhone(body.Phone)
			if err != nil {
				return nil, err
			}
			v.Check(!exists, "phone", "phone is already in use, try something different")
		}
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	v.Check(validator.NotBlank(body.Email), "email", "email is required")
	if validator.NotBlank(body.Email) {
		v.Check(validator.ValidEmail(email), "email", "provide valid email")
		if validator.ValidEmail(email) {
			exists, err := s.repo.UserExistsWithEmail(email)
			if err != nil {
				return nil, err
			}
			v.Check(!exists, "email", "Email is already in use, try something different")
		}
	}
	password := strings.TrimSpace(body.Password)
	v.Check(validator.NotBlank(body.Password), "password", "password is required")
	if validator.NotBlank(body.Password) {
		v.Check(len(password) >= 8 && len(password) <= 15, "password", "password should be of minimum 8 and maximum 15 character")
	}
	if !v.Valid() {
		return nil, s.failedValidation(v)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &data.User{
		Title:    body.Title,
		Name:     body.Name,
		Phone:    body.Phone,
		Email:    email,
		Password: hash,
		Address:  body.Address,
	}
	err = s.repo.CreateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			// Lost a race against a concurrent registration with the
			// same email or phone.
			return nil, s.validationFailure("Email is already in use, try something different")
		default:
			return nil, err
		}
	}
	if s.config.SMTP.Enabled {
		s.background(func() {
			err := s.mailer.Send(user.Email, "user_welcome.tmpl", user)
			if err != nil {
				s.logger.PrintError(err, nil)
			}
		})
	}
	return user, nil
}

// LoginUser checks the supplied credentials and returns a signed
// authentication token for the user.
func (s *service) LoginUser(body dto.LoginRequestBody) (string, error) {
	if body == (dto.LoginRequestBody{}) {
		return "", s.validationFailure("Please provide valid credentials")
	}
	v := validator.New()
	v.Check(validator.NotBlank(body.Email), "email", "please provide email")
	v.Check(validator.NotBlank(body.Password), "password", "please provide password")
	if !v.Valid() {
		return "", s.failedValidation(v)
	}
	user, err := s.repo.GetUserByEmail(strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return "", s.invalidCredentials()
		default:
			return "", err
		}
	}
	match, err := s.hasher.Compare(user.Password, strings.TrimSpace(body.Password))
	if err != nil {
		return "", err
	}
	if !match {
		return "", s.invalidCredentials()
	}
	return s.tokens.Issue(user.ID.Hex())
}

// VerifyToken checks a token's signature and expiry and returns the user ID
// it was issued for. Failures surface as token.ErrInvalidToken.
func (s *service) VerifyToken(tokenString string) (string, error) {
	return s.tokens.Verify(tokenString)
}
