package models

// User is the single owner account. Username and PasswordHash are empty for
// a user created by the seed command before credentials were assigned.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// CurrentUser is the request-scoped identity. The zero value is anonymous.
type CurrentUser struct {
	User *User
}

func (c CurrentUser) IsAuthenticated() bool {
	return c.User != nil
}

// ID returns 0 for anonymous requests.
func (c CurrentUser) ID() int {
	if c.User == nil {
		return 0
	}
	return c.User.ID
}
