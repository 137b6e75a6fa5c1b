package requests

// Login is the body for both role login endpoints.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupPatient struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	RetypePassword string  `json:"-" validate:"required,eqfield=Password"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

type SignupDoctor struct {
	FirstName      string       `json:"first_name" validate:"required"`
	LastName       string       `json:"last_name" validate:"required"`
	Email          string       `json:"email" validate:"required,email"`
	Password       string       `json:"password" validate:"required,min=8"`
	RetypePassword string       `json:"-" validate:"required,eqfield=Password"`
	Address        string       `json:"address" validate:"required"`
	SpecialtyID    int          `json:"specialty_id" validate:"required,gt=0"`
	Phone          *string      `json:"phone,omitempty"`
	SocialLinks    *SocialLinks `json:"social_links,omitempty"`
	PhotoURL       *string      `json:"photo_url,omitempty"`
	ContactEmail   *string      `json:"contact_email,omitempty"`
	ContactPhone   *string      `json:"contact_phone,omitempty"`
}
