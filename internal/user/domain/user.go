package domain

// User represents a user account row in the directory.
type User struct {
	ID       string
	UserName string
	FullName string
	Email    string
	Disabled bool
	// DoubleHashedPassword is the stored credential material: the one-way
	// transform of the hash the client submits on the wire. Never returned
	// to callers outside the credential check.
	DoubleHashedPassword string
}
