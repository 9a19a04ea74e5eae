package models

// SubmissionResult is returned to the caller after a relayed submission
type SubmissionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Reference string `json:"reference,omitempty"`
	Attached  bool   `json:"attached"`
}

// ContactInquiry is a support message sent from the contact page
type ContactInquiry struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,emailshape"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"  validate:"required"`
	Category string `json:"category" validate:"required,oneof=technical billing course account general"`
	Message  string `json:"message"  validate:"required"`
}

// RelayResponse is the body returned by the Web3Forms submit endpoint
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
