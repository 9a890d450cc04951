package domain

// RegisterInput is the payload for creating an account
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=254" example:"sam@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"required,min=1,max=120" example:"Sam Doe"`
}

// LoginInput is the payload for password login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" example:"sam@example.com"`
	Password string `json:"password" validate:"required"`
}

// UpdateMeInput carries profile fields, absent fields stay untouched
type UpdateMeInput struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=120"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
}

// ChangePasswordInput is the payload for rotating a password
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// RefreshInput carries a refresh token
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPair is an issued access and refresh token set
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthOutput bundles the account with its fresh tokens
type AuthOutput struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}
