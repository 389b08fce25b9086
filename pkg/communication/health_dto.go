package communication

const (
	ServiceUp   = "UP"
	ServiceDown = "DOWN"
)

type HealthDtoResponse struct {
	ServiceStatus        string `json:"service_status"`
	DatabaseStatus       string `json:"database_status,omitempty"`
	DatabaseErrorDetails string `json:"database_error_details,omitempty"`
	Error                string `json:"error,omitempty"`
}
