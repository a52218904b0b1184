package models

type User struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Role            Role    `json:"role"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == AdminRole
}

// Session is the credential record kept by a CredentialStore.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// AuthRes is the payload of a successful login or registration.
type AuthRes struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateUserReq is a partial update; nil fields are not sent.
type UpdateUserReq struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

type UserFilter struct {
	Page     int
	PageSize int
	Search   string
}
