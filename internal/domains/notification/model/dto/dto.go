package dto

type SendEmailRequest struct {
	To      string `json:"to"      validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body"    validate:"required"`
}

type SendEmailResponse struct {
	ID string `json:"id"`
}
