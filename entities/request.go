package entities

// Request is the uniform inbound envelope the dispatcher resolves into a
// lifecycle command. Only the fields the named operation needs have to be
// set.
type Request struct {
	OperationName   string       `json:"operation_name"`
	CustomerID      string       `json:"customer_id,omitempty"`
	TripID          string       `json:"trip_id,omitempty"`
	TicketID        string       `json:"ticket_id,omitempty"`
	Class           ServiceClass `json:"class,omitempty"`
	PriceType       PriceType    `json:"price_type,omitempty"`
	PenaltyOverride *float64     `json:"penalty_override,omitempty"`
	Filter          TripFilter   `json:"filter,omitempty"`
}

type OutcomeCode string

const (
	CodeOK               OutcomeCode = "OK"
	CodeTripNotFound     OutcomeCode = "TRIP_NOT_FOUND"
	CodeTicketNotFound   OutcomeCode = "TICKET_NOT_FOUND"
	CodeCapacityExceeded OutcomeCode = "CAPACITY_EXCEEDED"
	CodeNotEligible      OutcomeCode = "NOT_ELIGIBLE"
	CodePaymentFailed    OutcomeCode = "PAYMENT_FAILED"
	CodeUnknownOperation OutcomeCode = "UNKNOWN_OPERATION"
	CodeInternalError    OutcomeCode = "INTERNAL_ERROR"
)

const (
	OutcomeOK = "OK"
	OutcomeKO = "KO"
)

// Response is the uniform outcome envelope. Business failures are valid
// terminal states carried here, never raised faults.
type Response struct {
	Outcome string      `json:"outcome"`
	Code    OutcomeCode `json:"code"`
	Message string      `json:"message"`
	Ticket  *Ticket     `json:"ticket,omitempty"`
	Tickets []Ticket    `json:"tickets,omitempty"`
	Trips   []Trip      `json:"trips,omitempty"`
}

func OK(message string) Response {
	return Response{Outcome: OutcomeOK, Code: CodeOK, Message: message}
}

func KO(code OutcomeCode, message string) Response {
	return Response{Outcome: OutcomeKO, Code: code, Message: message}
}
