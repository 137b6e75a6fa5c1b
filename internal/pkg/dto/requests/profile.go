package requests

// UpdatePatientProfile is a full replace of the patient's mutable fields.
type UpdatePatientProfile struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Address   string  `json:"address"`
	Phone     *string `json:"phone,omitempty"`
}

// UpdateDoctorProfile is a full replace of the doctor's mutable fields,
// working hours included.
type UpdateDoctorProfile struct {
	FirstName    string        `json:"first_name" validate:"required"`
	LastName     string        `json:"last_name" validate:"required"`
	Address      string        `json:"address" validate:"required"`
	Phone        *string       `json:"phone,omitempty"`
	ContactEmail *string       `json:"contact_email,omitempty"`
	ContactPhone *string       `json:"contact_phone,omitempty"`
	SocialLinks  SocialLinks   `json:"social_links"`
	WorkingHours []WorkingHour `json:"working_hours" validate:"required,len=2"`
}

type SocialLinks struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// WorkingHour is one wire shift entry. Period false denotes the morning
// shift, true the evening shift; this boolean encoding is authoritative.
type WorkingHour struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Period    bool   `json:"period"`
}
