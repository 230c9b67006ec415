package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PayInAdvance PaymentMethod = "PayInAdvance"
	PayCash      PaymentMethod = "PayCash"
)

func (p PaymentMethod) IsValid() bool {
	return p == PayInAdvance || p == PayCash
}

// CheckInState is the tri-state check-in marker shown next to a booking.
type CheckInState string

const (
	NotCheckedIn CheckInState = "NOT_CHECKED_IN"
	CheckedIn    CheckInState = "CHECKED_IN"
	CheckedOut   CheckInState = "CHECKED_OUT"
)

// InvalidatedEmail is what the backend reports as email for a check-in
// record whose guest already left.
const InvalidatedEmail = "invalid"

// PDF documents the backend stores per booking.
const (
	DocumentConfirmation = "BookingConfirmation.pdf"
	DocumentInvoice      = "Invoice.pdf"
	DocumentCancellation = "BookingCancellation.pdf"
)

func IsDocumentType(t string) bool {
	switch t {
	case DocumentConfirmation, DocumentInvoice, DocumentCancellation:
		return true
	default:
		return false
	}
}
