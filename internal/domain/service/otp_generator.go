package service

// OTPGenerator produces one-time numeric codes for email verification.
//
// Codes are fire-and-forget: nothing is retained between calls and no
// expiry or binding to a user is tracked here. The mail flow embeds the
// code directly into the message body.
type OTPGenerator interface {
	// Generate returns a fixed-length numeric code drawn uniformly from a
	// cryptographically secure source.
	Generate() (string, error)
}
