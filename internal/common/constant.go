// Package common contains shared constants and sentinel errors used across
// blogkeeper components.
package common

const (
	// AuthorizationHeader carries the bearer access token on outbound requests.
	AuthorizationHeader = "Authorization"

	// UserIDHeader is the secondary identity header expected by the backend.
	UserIDHeader = "X-User-Id"

	// XSRFTokenHeader carries the anti-forgery token echoed from the
	// XSRF-TOKEN cookie.
	XSRFTokenHeader = "X-XSRF-TOKEN"

	// RequestIDHeader tags every outbound request for log correlation.
	RequestIDHeader = "X-Request-Id"

	// XSRFCookieName is the cookie the backend sets for anti-forgery checks.
	XSRFCookieName = "XSRF-TOKEN"
)

// Keys of the persisted credential record in the local database.
const (
	CredentialKeyToken  = "token"
	CredentialKeyUserID = "userId"
)

// AdminRole is the role name that grants access to the admin area.
const AdminRole = "ADMIN"
