package services

import "github.com/dmitrijs2005/helpdesk/internal/common"

// CanCreateTicket reports whether a role is allowed to open tickets. The
// allow-list is deliberate: admins review tickets rather than open them, and
// unknown roles are denied outright.
func CanCreateTicket(role string) bool {
	switch role {
	case common.RoleUser, common.RoleMaster:
		return true
	default:
		return false
	}
}
