package constant

// Roles carried inside the signed token. New admin accounts default to
// RoleAdmin; tokens without a role claim are treated as RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Person.Type values. The write path requires the field but does not restrict
// it to these two, matching the legacy dashboard.
const (
	PersonTypeSupervisor = "supervisor"
	PersonTypeVolunteer  = "volunteer"
)
