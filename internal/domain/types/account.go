package types

// User is the signed-in account as returned by the login endpoint.
type User struct {
	ID          string   `json:"id"`
	KeyUser     KeyUser  `json:"keyuser"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	GroupTitles []string `json:"group_titles,omitempty"`
}
