package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type authGateway struct {
	BaseUrl string
	Log     *zap.Logger
	Client  *http.Client
	Limiter *rate.Limiter
}

// NewAuthGateway builds the REST binding against the platform API. The
// timeout bounds every request; expiry surfaces as a network failure.
func NewAuthGateway(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.AuthGateway {
	return &authGateway{
		BaseUrl: baseUrl,
		Log:     logger,
		Client:  &http.Client{Timeout: timeout},
		Limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
}

func (c *authGateway) SignupPatient(ctx context.Context, request *requests.SignupPatient) error {
	return c.signup(ctx, constvars.EndpointPatientSignup, request)
}

func (c *authGateway) SignupDoctor(ctx context.Context, request *requests.SignupDoctor) error {
	return c.signup(ctx, constvars.EndpointDoctorSignup, request)
}

func (c *authGateway) signup(ctx context.Context, endpoint string, request interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	resp, err := c.postJSON(ctx, endpoint, "", request)
	if err != nil {
		c.Log.Error("authGateway.signup error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("authGateway.signup rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrSignupRejected(resp.StatusCode)
	}

	c.Log.Info("authGateway.signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)
	return nil
}

func (c *authGateway) Login(ctx context.Context, kind models.AccountKind, email, password string) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := constvars.EndpointPatientLogin
	if kind == models.AccountKindDoctor {
		endpoint = constvars.EndpointDoctorLogin
	}
	c.Log.Info("authGateway.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountKindKey, string(kind)),
	)

	resp, err := c.postJSON(ctx, endpoint, "", &requests.Login{Email: email, Password: password})
	if err != nil {
		c.Log.Error("authGateway.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountKindKey, string(kind)),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest && resp.StatusCode < constvars.StatusInternalServerError {
		c.Log.Warn("authGateway.Login credentials rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountKindKey, string(kind)),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrAuthRejected(resp.StatusCode)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, endpoint)
	}

	token := new(responses.Token)
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		c.Log.Error("authGateway.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "login")
	}

	c.Log.Info("authGateway.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("is_patient", token.IsPatient),
	)
	return token, nil
}

func (c *authGateway) FetchProfile(ctx context.Context, token string) (*responses.ProfileEnvelope, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.FetchProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := c.newRequest(ctx, constvars.MethodGet, constvars.EndpointProfile, token, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, req)
	if err != nil {
		c.Log.Error("authGateway.FetchProfile error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("authGateway.FetchProfile unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, constvars.EndpointProfile)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}
	envelope := new(responses.ProfileEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		c.Log.Error("authGateway.FetchProfile error decoding envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}
	// Some deployments return the profile fields flat beside isPatient
	// instead of nested under a profile key.
	if len(envelope.Profile) == 0 {
		envelope.Profile = body
	}

	c.Log.Info("authGateway.FetchProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("is_patient", envelope.IsPatient),
	)
	return envelope, nil
}

func (c *authGateway) UpdatePatientProfile(ctx context.Context, token string, request *requests.UpdatePatientProfile) error {
	return c.updateProfile(ctx, constvars.EndpointPatientProfile, token, request)
}

func (c *authGateway) UpdateDoctorProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) error {
	return c.updateProfile(ctx, constvars.EndpointDoctorProfile, token, request)
}

func (c *authGateway) updateProfile(ctx context.Context, endpoint, token string, request interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.updateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	req, err := c.newRequest(ctx, constvars.MethodPut, endpoint, token, bytes.NewBuffer(requestJSON))
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, req)
	if err != nil {
		c.Log.Error("authGateway.updateProfile error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("authGateway.updateProfile unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrUnexpectedStatusCode(resp.StatusCode, endpoint)
	}

	c.Log.Info("authGateway.updateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)
	return nil
}

func (c *authGateway) FetchDoctorWorkingHours(ctx context.Context, doctorID int) ([]responses.WorkingHour, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf(constvars.EndpointDoctorWorkingHoursFormat, doctorID)
	c.Log.Info("authGateway.FetchDoctorWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	req, err := c.newRequest(ctx, constvars.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, endpoint)
	}

	var hours []responses.WorkingHour
	if err := json.NewDecoder(resp.Body).Decode(&hours); err != nil {
		c.Log.Error("authGateway.FetchDoctorWorkingHours error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "working hours")
	}
	return hours, nil
}

func (c *authGateway) postJSON(ctx context.Context, endpoint, token string, request interface{}) (*http.Response, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	req, err := c.newRequest(ctx, constvars.MethodPost, endpoint, token, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

func (c *authGateway) newRequest(ctx context.Context, method, endpoint, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+endpoint, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, token))
	}
	return req, nil
}

// do rate-limits outgoing calls and maps every transport-level failure,
// timeouts included, to a network error.
func (c *authGateway) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}
