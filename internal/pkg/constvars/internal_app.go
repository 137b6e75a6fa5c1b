package constvars

type contextKey string

// CONTEXT_REQUEST_ID_KEY carries the per-invocation correlation ID through context.
const CONTEXT_REQUEST_ID_KEY contextKey = "request_id"

// Account kinds as persisted and logged. The wire discriminator is the
// isPatient boolean; these strings never go over the wire.
const (
	AccountKindPatient = "patient"
	AccountKindDoctor  = "doctor"
)

// Gateway endpoints, relative to the API base URL.
const (
	EndpointPatientSignup  = "/auth/patient/signup"
	EndpointDoctorSignup   = "/auth/doctor/signup"
	EndpointPatientLogin   = "/auth/patient/login"
	EndpointDoctorLogin    = "/auth/doctor/login"
	EndpointProfile        = "/auth/me"
	EndpointPatientProfile = "/auth/patient/profile"
	EndpointDoctorProfile  = "/auth/doctor/profile"

	// EndpointDoctorWorkingHoursFormat takes the numeric doctor ID.
	EndpointDoctorWorkingHoursFormat = "/doctor/%d/working-hours"
)

// Default doctor shifts applied when the server omits working_hours entirely.
const (
	DefaultMorningShiftStart = "08:00:00"
	DefaultMorningShiftEnd   = "12:00:00"
	DefaultEveningShiftStart = "14:00:00"
	DefaultEveningShiftEnd   = "18:00:00"
)

// Session store backends.
const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

// SessionRedisKey is the fixed key the redis-backed store writes the
// marshalled session under. One logical session per deployment.
const SessionRedisKey = "medibook:session"
