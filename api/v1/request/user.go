package request

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EditProfileRequest binds the multipart text fields; the picture file is
// read from the form separately.
type EditProfileRequest struct {
	Bio    *string `form:"bio"`
	Gender *string `form:"gender" binding:"omitempty,gender"`
}
