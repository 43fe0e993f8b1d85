package dto

type LogoutResponse struct {
	Message   string `json:"message"`
	LogoutURL string `json:"logout_url,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
