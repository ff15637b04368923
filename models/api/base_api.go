package apimodels

type ErrorResponse struct {
	Error string `json:"error"` // error message
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"` // ok/fail
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

func NewMessage(message string) MessageResponse {
	return MessageResponse{
		Message: message,
	}
}
