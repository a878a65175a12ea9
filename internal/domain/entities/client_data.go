package entities

import "time"

// ClientField names one independently settable ClientData attribute.
type ClientField string

const (
	ClientFieldName  ClientField = "name"
	ClientFieldEmail ClientField = "email"
	ClientFieldPhone ClientField = "phone"
)

// ClientFields lists the fields required before a policy may leave intake.
var ClientFields = []ClientField{ClientFieldName, ClientFieldEmail, ClientFieldPhone}

// ClientData is collected incrementally during intake.
//
// Storage model (DynamoDB):
//   - PK: policy_id (one record per policy)
//
// Empty strings mean "not supplied yet". Each field is first-write-wins.
type ClientData struct {
	ID        string    `json:"id"`
	PolicyID  string    `json:"policy_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field returns the stored value of f.
func (c ClientData) Field(f ClientField) string {
	switch f {
	case ClientFieldName:
		return c.Name
	case ClientFieldEmail:
		return c.Email
	case ClientFieldPhone:
		return c.Phone
	}
	return ""
}

// MissingFields returns the required fields that are still empty.
func (c ClientData) MissingFields() []ClientField {
	var missing []ClientField
	for _, f := range ClientFields {
		if c.Field(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
