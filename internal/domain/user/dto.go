package user

// Profile is the public projection of a user returned by the API.
type Profile struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Role   Role   `json:"role"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Branch: u.Branch,
		Role:   u.Role,
	}
}
