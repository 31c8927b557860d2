package dto

import "github.com/emzola/bookhaven/data"

// CreateUserRequestBody defines the request body for RegisterUser.
type CreateUserRequestBody struct {
	Title    string        `json:"title"`
	Name     string        `json:"name"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Address  *data.Address `json:"address"`
}

// LoginRequestBody defines the request body for LoginUser.
type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
