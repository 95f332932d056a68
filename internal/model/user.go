package model

// Account is a demo login.  PasswordHash is a bcrypt hash computed at
// start-up from the constant demo password; the plain password is kept only
// so the login screen can offer autofill cards.
//
// Fields:
//
//	ID           – stable identifier used as the token subject.
//	Name         – display name.
//	Email        – login identifier, matched exactly.
//	Password     – demo password shown on the login page.
//	PasswordHash – bcrypt hash checked on login.
//	Role         – access level granted on login.
//	Description  – one-line summary of what the role may do.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Description  string `json:"description"`
}
