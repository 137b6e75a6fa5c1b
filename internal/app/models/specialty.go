package models

// Specialty is a fixed reference entry the doctor signup flow selects from.
type Specialty struct {
	ID    int
	Label string
}

var specialties = []Specialty{
	{ID: 1, Label: "General Medicine"},
	{ID: 2, Label: "Cardiology"},
	{ID: 3, Label: "Dermatology"},
	{ID: 4, Label: "Pediatrics"},
	{ID: 5, Label: "Gynecology"},
	{ID: 6, Label: "Ophthalmology"},
	{ID: 7, Label: "Orthopedics"},
	{ID: 8, Label: "Neurology"},
	{ID: 9, Label: "Psychiatry"},
	{ID: 10, Label: "Dentistry"},
}

// Specialties returns a copy of the selectable specialty list.
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// SpecialtyByID reports whether id belongs to the reference list.
func SpecialtyByID(id int) (Specialty, bool) {
	for _, s := range specialties {
		if s.ID == id {
			return s, true
		}
	}
	return Specialty{}, false
}
