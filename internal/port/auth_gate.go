package port

// AuthGate decides whether a staff credential pair is valid. The core
// never sees the credential scheme; it only asks for a yes/no.
type AuthGate interface {
	Verify(username, password string) bool
}
