package model

// Rsvp is a guest's stored attendance response. At most one record exists per
// email address (compared case-insensitively); resubmitting replaces the
// fields of the existing record under its original ID.
type Rsvp struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Attending           bool   `json:"attending"`
	GuestCount          *int   `json:"guestCount"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
	Message             string `json:"message,omitempty"`
}

// InsertRsvp carries the fields of an RSVP submission after boundary
// validation. GuestCount is the number of additional guests beyond the
// respondent; nil means no extra guests were declared.
type InsertRsvp struct {
	Name                string
	Email               string
	Attending           bool
	GuestCount          *int
	DietaryRestrictions string
	Message             string
}

// RsvpRequest is the POST /api/rsvp body. Guests may send either a single
// name or a firstName/lastName pair. Attending is a pointer so a missing
// field can be told apart from an explicit false.
type RsvpRequest struct {
	Name                string `json:"name"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Attending           *bool  `json:"attending"`
	GuestCount          *int   `json:"guestCount"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Message             string `json:"message"`
}

// RsvpStats aggregates attendance numbers across all stored RSVPs.
type RsvpStats struct {
	Total        int `json:"total"`
	Attending    int `json:"attending"`
	NotAttending int `json:"notAttending"`
	TotalGuests  int `json:"totalGuests"`
}

// RsvpListResponse is the GET /api/rsvp response body.
type RsvpListResponse struct {
	Rsvps []Rsvp    `json:"rsvps"`
	Stats RsvpStats `json:"stats"`
}

// SubmitRsvpResponse is the POST /api/rsvp response body.
type SubmitRsvpResponse struct {
	Message string `json:"message"`
	Rsvp    Rsvp   `json:"rsvp"`
}

// FindRsvpResponse is the GET /api/rsvp/{email} response body.
type FindRsvpResponse struct {
	Rsvp Rsvp `json:"rsvp"`
}
