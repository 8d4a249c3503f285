package domain

// TransitionPolicy decides which booking status changes are allowed.
// The default policy permits every edge between the three statuses, which
// matches how the system has always behaved: a Confirmed booking can still
// be Cancelled and a Cancelled one reopened. Strict mode makes Cancelled
// terminal.
type TransitionPolicy struct {
	strict bool
}

func NewTransitionPolicy(strict bool) *TransitionPolicy {
	return &TransitionPolicy{strict: strict}
}

func (p *TransitionPolicy) CanTransition(from, to BookingStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if p.strict && from == BookingStatusCancelled && to != BookingStatusCancelled {
		return false
	}
	return true
}

// IsRequestableStatus reports whether a client may ask for the status at
// all. Only Confirmed and Cancelled are accepted on the update endpoint;
// Pending is assigned by the system at creation and never requested.
func IsRequestableStatus(s BookingStatus) bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}
