package communication

type ErrorDtoResponse struct {
	Error string `json:"error"`
}
