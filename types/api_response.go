package types

// SuccessResponse is the uniform success envelope for all public endpoints.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ContactReceipt is the data payload returned for an accepted contact
// submission.
type ContactReceipt struct {
	MessageID       int64  `json:"message_id"`
	ReferenceNumber string `json:"reference_number"`
}

// PartnerReceipt is the data payload returned for an accepted
// dealer/distributor submission.
type PartnerReceipt struct {
	InquiryID       int64  `json:"inquiry_id"`
	ReferenceNumber string `json:"reference_number"`
	InquiryType     string `json:"inquiry_type"`
}

// NewSuccess builds the success envelope.
func NewSuccess(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

// NewError builds the failure envelope.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
