package types

import (
	"fmt"
	"time"
)

// InquiryType discriminates the variant of a stored inquiry. Contact
// inquiries use the reduced field set; dealer and distributor inquiries
// additionally require the partnership fields.
type InquiryType string

const (
	InquiryTypeContact     InquiryType = "contact"
	InquiryTypeDealer      InquiryType = "dealer"
	InquiryTypeDistributor InquiryType = "distributor"
)

// Field length bounds applied by the sanitizer before validation.
const (
	MaxNameLen           = 100
	MaxCompanyLen        = 100
	MaxCityLen           = 50
	MaxStateLen          = 50
	MaxExperienceLen     = 2000
	MaxContactMessageLen = 1000
	MaxPartnerMessageLen = 2000
)

// Inquiry is the unified record for all public form submissions. The
// partnership fields are empty for contact inquiries. ID is assigned by the
// store at insert time, never by callers.
type Inquiry struct {
	ID                 int64       `json:"id"`
	Type               InquiryType `json:"inquiry_type"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	CompanyName        string      `json:"company_name,omitempty"`
	City               string      `json:"city,omitempty"`
	State              string      `json:"state,omitempty"`
	BusinessExperience string      `json:"business_experience,omitempty"`
	Message            string      `json:"message"`
	IPAddress          string      `json:"ip_address"`
	UserAgent          string      `json:"user_agent"`
	Read               bool        `json:"read"`
	CreatedAt          time.Time   `json:"created_at"`
}

// IsPartner reports whether the inquiry is a dealer or distributor inquiry.
func (i *Inquiry) IsPartner() bool {
	return i.Type == InquiryTypeDealer || i.Type == InquiryTypeDistributor
}

// ReferenceNumber returns the zero-padded 6-digit reference shown to
// submitters, e.g. id 42 -> "000042". IDs beyond six digits print unpadded.
func (i *Inquiry) ReferenceNumber() string {
	return FormatReference(i.ID)
}

// FormatReference formats an inquiry id as a zero-padded 6-digit reference.
func FormatReference(id int64) string {
	return fmt.Sprintf("%06d", id)
}

// ContactSubmission is the request body of the public contact form.
// Accepted as form-encoded or JSON.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

// PartnerSubmission is the request body of the dealer/distributor form.
type PartnerSubmission struct {
	InquiryType        string `json:"inquiry_type" form:"inquiry_type"`
	FullName           string `json:"full_name" form:"full_name"`
	CompanyName        string `json:"company_name" form:"company_name"`
	Email              string `json:"email" form:"email"`
	Phone              string `json:"phone" form:"phone"`
	City               string `json:"city" form:"city"`
	State              string `json:"state" form:"state"`
	BusinessExperience string `json:"business_experience" form:"business_experience"`
	Message            string `json:"message" form:"message"`
}

// InquiryFilter narrows admin inquiry listings.
type InquiryFilter struct {
	Type   InquiryType
	Unread *bool
	Limit  int
	Offset int
}
