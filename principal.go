package booking

// Principal is the resolved, in-memory representation of an authenticated
// caller for the duration of one request. It is built once by the token gate
// (or at login time from the store record), handed to the request context,
// and discarded at request end.
//
// PasswordHash is carried because the credential verifier resolves the full
// record anyway; it is never serialized or re-displayed.
type Principal struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Admin        bool
	PasswordHash string
}

// Equal compares identity only: two principals with the same id are the same
// account no matter what the remaining fields hold.
func (p Principal) Equal(other Principal) bool {
	return p.ID == other.ID
}

// IsZero reports whether the principal carries no identity.
func (p Principal) IsZero() bool {
	return p.ID == 0 && p.Email == ""
}

// NewPrincipalFromUser copies the store record into a principal value.
func NewPrincipalFromUser(user *User) Principal {
	if user == nil {
		return Principal{}
	}
	return Principal{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Admin:        user.Admin,
		PasswordHash: user.PasswordHash,
	}
}
