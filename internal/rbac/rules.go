package rbac

// Role names used across the service.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Simple default policy. Students only ever see their own data; the own-or-all
// split is enforced at the handler level like attempt scoping.
var RolePermissions = map[string][]string{
	RoleStudent: {
		"course:view",
		"session:view",
		"submission:create",
		"submission:view-own",
		"testresult:create",
		"testresult:view-own",
		"progress:view-own",
		"scholarship:view-own",
		"feedback:view-own",
		"student:view-own",
	},
	RoleAdmin: {
		"*", // everything
	},
}
