package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> configured default) and explicit false.
type GenerateRequest struct {
	Length  int   `json:"length"`
	Letters *bool `json:"letters"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
	Count   int   `json:"count" validate:"omitempty,min=1,max=20"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Length    int              `json:"length"`
	Classes   []string         `json:"classes"`
	Passwords []PasswordResult `json:"passwords"`
}

// PasswordResult is a single generated password. Copyable is false when
// Password holds the empty-selection placeholder.
type PasswordResult struct {
	Password string           `json:"password"`
	Copyable bool             `json:"copyable"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest represents a strength evaluation request.
type StrengthRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// StrengthResponse represents a strength assessment with its display color token.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}
