package contracts

import (
	"context"

	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
)

// AuthGateway is the REST binding against the platform API. All calls honor
// context cancellation; failures carry an exceptions.Kind so callers can tell
// a rejected credential from an unreachable server.
type AuthGateway interface {
	SignupPatient(ctx context.Context, request *requests.SignupPatient) error
	SignupDoctor(ctx context.Context, request *requests.SignupDoctor) error
	Login(ctx context.Context, kind models.AccountKind, email, password string) (*responses.Token, error)
	FetchProfile(ctx context.Context, token string) (*responses.ProfileEnvelope, error)
	UpdatePatientProfile(ctx context.Context, token string, request *requests.UpdatePatientProfile) error
	UpdateDoctorProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) error
	FetchDoctorWorkingHours(ctx context.Context, doctorID int) ([]responses.WorkingHour, error)
}
