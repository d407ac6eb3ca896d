package entity

// User holds the profile claims carried by the upstream bearer token plus
// whatever the profile endpoint returns. Claims are decoded for display
// only; they are never an authorization input.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Realname   string `json:"realname,omitempty"`
	Email      string `json:"email,omitempty"`
	UserGroup  int    `json:"usergroup,omitempty"`
	UserType   int    `json:"usertype,omitempty"`
	UserStatus int    `json:"userstatus,omitempty"`
	IsAdmin    bool   `json:"isAdmin,omitempty"`
}

// DisplayName prefers the real name over the login name.
func (u User) DisplayName() string {
	if u.Realname != "" {
		return u.Realname
	}

	return u.Username
}
