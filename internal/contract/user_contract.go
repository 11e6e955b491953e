package contract

type EmailStatus string

const (
	EmailStatusAvailable EmailStatus = "AVAILABLE"
	EmailStatusExists    EmailStatus = "TAKEN"
	EmailStatusVerifying EmailStatus = "VERIFYING"
)

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=80"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=64,hasspecial,hasdigit,hasupper,haslower"`
	UnidadeID int64  `json:"unidadeId" validate:"required,min=1"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=2,max=80"`
	Perms     *int64  `json:"permissions" validate:"omitempty,min=0"`
	Suspended *bool   `json:"suspended" validate:"omitempty"`
}

type ConfirmSignupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=1,max=8"`
}

type ResendConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserStatusRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	UnidadeID int64  `json:"unidadeId"`
	Perms     int64  `json:"permissions"`
	// IsVerified and Suspended are only disclosed to user managers.
	IsVerified *bool  `json:"isVerified,omitempty"`
	Suspended  *bool  `json:"suspended,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type UserLoginResponse struct {
	AccessToken string `json:"accessToken"`
	IDToken     string `json:"idToken"`
}
