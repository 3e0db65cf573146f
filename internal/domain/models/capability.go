package models

// Capability is a named permission checked per route.
type Capability string

const (
	CapHouseholdsRead  Capability = "households:read"
	CapHouseholdsWrite Capability = "households:write"
	CapAidRead         Capability = "aid:read"
	CapAidWrite        Capability = "aid:write"
	CapLogsRead        Capability = "logs:read"
	CapInboxRead       Capability = "inbox:read"
	CapUsersManage     Capability = "users:manage"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapHouseholdsRead:  true,
		CapHouseholdsWrite: true,
		CapAidRead:         true,
		CapAidWrite:        true,
		CapLogsRead:        true,
		CapInboxRead:       true,
		CapUsersManage:     true,
	},
	RoleOfficial: {
		CapHouseholdsRead:  true,
		CapHouseholdsWrite: true,
		CapAidRead:         true,
		CapAidWrite:        true,
		CapLogsRead:        true,
		CapInboxRead:       true,
	},
	RoleViewer: {
		CapHouseholdsRead: true,
		CapAidRead:        true,
	},
}

// Can reports whether role r holds capability c. Unknown roles hold nothing.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}
