package models

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	UserID              int64  `json:"userId"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                Role   `json:"role"`
	DrivingLicence      string `json:"drivingLicence,omitempty"`
	DrivingLicenceImage string `json:"drivingLicenceImage,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasLicenceImage reports whether a licence image is on file. Booking
// submission is blocked until one is.
func (u User) HasLicenceImage() bool {
	return u.DrivingLicenceImage != ""
}
