package domain

// Label returns the display label of a raw status code
func (s StatusCode) Label() DisplayStatus {
	switch s {
	case StatusCodeActive:
		return DisplayStatusActive
	case StatusCodeClaimed:
		return DisplayStatusClaimed
	case StatusCodeExpiredAndRefunded:
		return DisplayStatusExpiredAndRefunded
	default:
		return DisplayStatusUnknown
	}
}

// Derive computes the display status of a treat against the given clock.
// A treat is burn eligible only while it is still active on-chain and its
// expiry lies strictly in the past.
func Derive(statusCode StatusCode, expiryUnix int64, nowUnix int64) DisplayStatus {
	if statusCode == StatusCodeActive && expiryUnix < nowUnix {
		return DisplayStatusBurnEligible
	}
	return statusCode.Label()
}
