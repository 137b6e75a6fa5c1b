package models

// Profile is a tagged union over the two account variants. Exactly one of
// Patient and Doctor is set, selected by Kind; consumers must switch on Kind
// and never infer the variant from field presence.
type Profile struct {
	Kind    AccountKind
	Patient *PatientProfile
	Doctor  *DoctorProfile
}

type PatientProfile struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

type DoctorProfile struct {
	ID           int
	FirstName    string
	LastName     string
	Address      string
	Phone        string
	ContactEmail string
	ContactPhone string
	SpecialtyID  int
	SocialLinks  SocialLinks
	WorkingHours WorkingHours
}

type SocialLinks struct {
	Facebook  string
	Instagram string
	Twitter   string
	LinkedIn  string
}

// WorkingHours holds the doctor's two fixed daily shifts. Times are canonical
// HH:MM:SS strings.
type WorkingHours struct {
	Morning Shift
	Evening Shift
}

type Shift struct {
	Start string
	End   string
}

// FirstLastName returns the name fields of whichever variant is set.
func (p *Profile) FirstLastName() (string, string) {
	switch p.Kind {
	case AccountKindDoctor:
		if p.Doctor != nil {
			return p.Doctor.FirstName, p.Doctor.LastName
		}
	default:
		if p.Patient != nil {
			return p.Patient.FirstName, p.Patient.LastName
		}
	}
	return "", ""
}
