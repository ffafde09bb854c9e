package models

// Token is a bearer credential derived reversibly from an account ID.
//
// Value is the opaque string presented in the Authorization header.
// It carries no expiry, scope, or signature: any string with the
// expected prefix is accepted as proof of identity. This is a known
// defect of the credential scheme, preserved deliberately for wire
// compatibility; see internal/utils for the issue/parse contract.
type Token struct {
	// Value is the compact credential string sent to clients and
	// presented back on every authenticated request.
	Value string `json:"-"`

	// UserID is the account identifier embedded in Value. Populated on
	// issue and recovered on parse; internal to the server process.
	UserID string `json:"-"`
}

// String returns the compact credential string.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Value
}
