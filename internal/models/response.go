package models

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Message: message}
}

type MessageBody struct {
	Message string `json:"message"`
}
