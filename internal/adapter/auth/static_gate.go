package auth

// StaticGate verifies against one fixed credential pair supplied at
// construction. The comparison is a plain string match; there is no
// account store behind it.
type StaticGate struct {
	username string
	password string
}

func NewStaticGate(username, password string) *StaticGate {
	return &StaticGate{username: username, password: password}
}

func (g *StaticGate) Verify(username, password string) bool {
	return username == g.username && password == g.password
}
