package entity

import "time"

type (
	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Surname   *string   `json:"surname,omitempty"`
		Email     string    `json:"email"`
		Password  string    `json:"-"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	RegisterRequest struct {
		Email           string  `json:"email"`
		Name            string  `json:"name"`
		Surname         *string `json:"surname,omitempty"`
		Password        string  `json:"password"`
		PasswordConfirm string  `json:"password_confirm"`
	}

	RegisterResponse struct {
		Token string `json:"token"`
	}

	GetUserRequest struct {
		ID string `json:"id"`
	}

	GetUserResponse struct {
		User *User `json:"user"`
	}
)
