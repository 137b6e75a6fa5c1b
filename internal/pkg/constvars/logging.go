package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingAccountKindKey = "account_kind"
	LoggingEmailKey       = "email"
	LoggingEndpointKey    = "endpoint"
	LoggingStatusCodeKey  = "status_code"
	LoggingDoctorIDKey    = "doctor_id"
	LoggingBackendKey     = "backend"
)
