package profiles

import (
	"context"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profileSynchronizer struct {
	Gateway  contracts.AuthGateway
	Sessions contracts.SessionManager
	Log      *zap.Logger
}

func NewProfileSynchronizer(
	authGateway contracts.AuthGateway,
	sessionManager contracts.SessionManager,
	logger *zap.Logger,
) contracts.ProfileSynchronizer {
	return &profileSynchronizer{
		Gateway:  authGateway,
		Sessions: sessionManager,
		Log:      logger,
	}
}

// FetchCurrentProfile decodes the profile document by the server-returned
// discriminator, never the locally cached kind. A missing or malformed
// profile comes back as nil rather than an error; the screens treat that as
// "no profile available".
func (s *profileSynchronizer) FetchCurrentProfile(ctx context.Context) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token := s.Sessions.Token()
	if token == "" {
		return nil, exceptions.ErrNotLoggedIn()
	}

	envelope, err := s.Gateway.FetchProfile(ctx, token)
	if err != nil {
		s.Log.Warn("profileSynchronizer.FetchCurrentProfile fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}

	profile, err := decodeProfile(envelope)
	if err != nil {
		s.Log.Warn("profileSynchronizer.FetchCurrentProfile decode failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}

	s.Log.Info("profileSynchronizer.FetchCurrentProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountKindKey, string(profile.Kind)),
	)
	return profile, nil
}

// SaveProfile commits the full field set for the profile's kind, then
// refreshes the manager's cached name fields.
func (s *profileSynchronizer) SaveProfile(ctx context.Context, profile *models.Profile) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token := s.Sessions.Token()
	if token == "" || profile == nil {
		return false
	}

	var err error
	switch profile.Kind {
	case models.AccountKindDoctor:
		if profile.Doctor == nil {
			return false
		}
		err = s.Gateway.UpdateDoctorProfile(ctx, token, buildDoctorUpdate(profile.Doctor))
	default:
		if profile.Patient == nil {
			return false
		}
		err = s.Gateway.UpdatePatientProfile(ctx, token, buildPatientUpdate(profile.Patient))
	}
	if err != nil {
		s.Log.Warn("profileSynchronizer.SaveProfile update failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}

	first, last := profile.FirstLastName()
	if err := s.Sessions.RefreshCachedNames(ctx, first, last); err != nil {
		s.Log.Warn("profileSynchronizer.SaveProfile failed to refresh cached names",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return true
}

// DoctorWorkingHours resolves a doctor's public shifts with the same
// normalization and defaulting the profile decode applies.
func (s *profileSynchronizer) DoctorWorkingHours(ctx context.Context, doctorID int) (*models.WorkingHours, error) {
	entries, err := s.Gateway.FetchDoctorWorkingHours(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	hours := workingHoursFromWire(entries)
	return &hours, nil
}

func decodeProfile(envelope *responses.ProfileEnvelope) (*models.Profile, error) {
	if envelope.IsPatient {
		wire := new(responses.PatientProfile)
		if err := json.Unmarshal(envelope.Profile, wire); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, "patient profile")
		}
		return &models.Profile{
			Kind: models.AccountKindPatient,
			Patient: &models.PatientProfile{
				ID:        wire.ID,
				FirstName: wire.FirstName,
				LastName:  wire.LastName,
				Address:   deref(wire.Address),
				Phone:     deref(wire.Phone),
			},
		}, nil
	}

	wire := new(responses.DoctorProfile)
	if err := json.Unmarshal(envelope.Profile, wire); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "doctor profile")
	}
	doctor := &models.DoctorProfile{
		ID:           wire.ID,
		FirstName:    wire.FirstName,
		LastName:     wire.LastName,
		Address:      wire.Address,
		Phone:        deref(wire.Phone),
		ContactEmail: deref(wire.ContactEmail),
		ContactPhone: deref(wire.ContactPhone),
		SpecialtyID:  wire.SpecialtyID,
		WorkingHours: workingHoursFromWire(wire.WorkingHours),
	}
	if wire.SocialLinks != nil {
		doctor.SocialLinks = models.SocialLinks{
			Facebook:  deref(wire.SocialLinks.Facebook),
			Instagram: deref(wire.SocialLinks.Instagram),
			Twitter:   deref(wire.SocialLinks.Twitter),
			LinkedIn:  deref(wire.SocialLinks.LinkedIn),
		}
	}
	return &models.Profile{Kind: models.AccountKindDoctor, Doctor: doctor}, nil
}

// workingHoursFromWire maps the wire shift array onto the two fixed shifts,
// normalizing clock strings and falling back to the default shifts when the
// server omits one or both entries. Period false is the morning shift, true
// the evening shift.
func workingHoursFromWire(entries []responses.WorkingHour) models.WorkingHours {
	hours := models.WorkingHours{
		Morning: models.Shift{
			Start: constvars.DefaultMorningShiftStart,
			End:   constvars.DefaultMorningShiftEnd,
		},
		Evening: models.Shift{
			Start: constvars.DefaultEveningShiftStart,
			End:   constvars.DefaultEveningShiftEnd,
		},
	}
	for _, entry := range entries {
		shift := models.Shift{
			Start: utils.NormalizeClock(entry.StartTime),
			End:   utils.NormalizeClock(entry.EndTime),
		}
		if entry.Period {
			hours.Evening = shift
		} else {
			hours.Morning = shift
		}
	}
	return hours
}

func buildPatientUpdate(patient *models.PatientProfile) *requests.UpdatePatientProfile {
	return &requests.UpdatePatientProfile{
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Address:   patient.Address,
		Phone:     optional(patient.Phone),
	}
}

func buildDoctorUpdate(doctor *models.DoctorProfile) *requests.UpdateDoctorProfile {
	return &requests.UpdateDoctorProfile{
		FirstName:    doctor.FirstName,
		LastName:     doctor.LastName,
		Address:      doctor.Address,
		Phone:        optional(doctor.Phone),
		ContactEmail: optional(doctor.ContactEmail),
		ContactPhone: optional(doctor.ContactPhone),
		SocialLinks: requests.SocialLinks{
			Facebook:  optional(doctor.SocialLinks.Facebook),
			Instagram: optional(doctor.SocialLinks.Instagram),
			Twitter:   optional(doctor.SocialLinks.Twitter),
			LinkedIn:  optional(doctor.SocialLinks.LinkedIn),
		},
		WorkingHours: []requests.WorkingHour{
			{
				StartTime: utils.NormalizeClock(doctor.WorkingHours.Morning.Start),
				EndTime:   utils.NormalizeClock(doctor.WorkingHours.Morning.End),
				Period:    false,
			},
			{
				StartTime: utils.NormalizeClock(doctor.WorkingHours.Evening.Start),
				EndTime:   utils.NormalizeClock(doctor.WorkingHours.Evening.End),
				Period:    true,
			},
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
