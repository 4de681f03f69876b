package role

// Roles recognized by the authorization middleware. The role travels in the
// JWT claims and controls both routing guards and rescue-record visibility.
const (
	Admin = "admin"
	Vet   = "vet"
	User  = "user"
)

func IsStaff(r string) bool {
	return r == Admin || r == Vet
}

func IsValid(r string) bool {
	return r == Admin || r == Vet || r == User
}
