package user

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	Role     string `json:"role" validate:"required,oneof=admin customer"`
}

// UpdateUserRequest uses pointers so omitted fields stay untouched
// (explicit allow-list, no mass assignment).
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin customer"`
}
