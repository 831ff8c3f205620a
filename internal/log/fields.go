package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldBackend    = "backend"
	FieldChart      = "chart"
	FieldRows       = "rows"
	FieldGender     = "gender"
	FieldCondition  = "condition"
	FieldCacheKey   = "cache_key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentDataset = "dataset"
	ComponentCharts  = "charts"
	ComponentCache   = "cache"
)
