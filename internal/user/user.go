package user

// User is an account row. Password holds the bcrypt hash and is stripped
// before the struct ever leaves a handler.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AuthUser is the slice of a user that travels inside a JWT and is all the
// other packages ever see of the caller.
type AuthUser struct {
	ID      string
	Email   string
	IsAdmin bool
}
