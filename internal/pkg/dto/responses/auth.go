package responses

import "github.com/goccy/go-json"

// Token is the successful login payload. IsPatient is the server-confirmed
// role, authoritative over whatever role the probe asked with.
type Token struct {
	AccessToken string `json:"access_token"`
	IsPatient   bool   `json:"isPatient"`
}

// ProfileEnvelope wraps the GET /auth/me payload: the role discriminator plus
// the untyped profile document, decoded downstream per variant.
type ProfileEnvelope struct {
	IsPatient bool            `json:"isPatient"`
	Profile   json.RawMessage `json:"profile"`
}

// PatientProfile mirrors the patient profile document.
type PatientProfile struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// DoctorProfile mirrors the doctor profile document. Optional blocks may be
// absent entirely; decoding tolerates that and applies defaults downstream.
type DoctorProfile struct {
	ID           int           `json:"id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Address      string        `json:"address"`
	Phone        *string       `json:"phone"`
	ContactEmail *string       `json:"contact_email"`
	ContactPhone *string       `json:"contact_phone"`
	SpecialtyID  int           `json:"specialty_id"`
	SocialLinks  *SocialLinks  `json:"social_links"`
	WorkingHours []WorkingHour `json:"working_hours"`
}

type SocialLinks struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
}

// WorkingHour is one wire shift entry, period false = morning, true = evening.
type WorkingHour struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Period    bool   `json:"period"`
}
