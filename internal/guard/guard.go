// Package guard is the single authorization checkpoint. Every mutating or
// privileged-read operation declares its allowed role set in one table so
// the policy stays centrally auditable. Permission records are not
// consulted here; authorization is decided on role names only.
package guard

import (
	"context"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated admin attached to the request context by the
// auth middleware.
type Actor struct {
	AdminID uuid.UUID
	Email   string
	Role    string
}

type contextKey string

const actorKey contextKey = "guard_actor"

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext extracts the actor from context.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

// Operation names every guarded API operation.
type Operation string

const (
	OpListUsers                Operation = "listUsers"
	OpGetUser                  Operation = "getUser"
	OpUpdateUser               Operation = "updateUser"
	OpDeleteUser               Operation = "deleteUser"
	OpListPermissions          Operation = "listPermissions"
	OpCreatePermission         Operation = "createPermission"
	OpUpdatePermission         Operation = "updatePermission"
	OpDeletePermission         Operation = "deletePermission"
	OpListRoles                Operation = "listRoles"
	OpCreateRole               Operation = "createRole"
	OpUpdateRole               Operation = "updateRole"
	OpDeleteRole               Operation = "deleteRole"
	OpAssignPermissionsToRole  Operation = "assignPermissionsToRole"
	OpListAdmins               Operation = "listAdmins"
	OpCreateAdmin              Operation = "createAdmin"
	OpUpdateAdmin              Operation = "updateAdmin"
	OpDeleteAdmin              Operation = "deleteAdmin"
	OpListAstrologers          Operation = "listAstrologers"
	OpGetAstrologer            Operation = "getAstrologer"
	OpCreateAstrologer         Operation = "addAstrologer"
	OpUpdateAstrologer         Operation = "updateAstrologer"
	OpDeleteAstrologer         Operation = "deleteAstrologer"
	OpScheduleInterview        Operation = "scheduleInterview"
	OpAddAstrologerDocument    Operation = "addAstrologerDocument"
	OpVerifyDocument           Operation = "verifyDocument"
	OpApproveAstrologer        Operation = "approveAstrologer"
	OpRejectAstrologer         Operation = "rejectAstrologer"
	OpListAuditLogs            Operation = "listAuditLogs"
)

// MsgAdminOnly is the denial message for admin-gated operations.
const MsgAdminOnly = "Admin only"

type policy struct {
	roles   map[string]struct{}
	message string
}

func allow(message string, roles ...string) policy {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return policy{roles: set, message: message}
}

// policies is the declarative required-role-set table.
var policies = map[Operation]policy{
	OpListUsers:  allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpGetUser:    allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpUpdateUser: allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpDeleteUser: allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),

	OpListPermissions:  allow("Only SUPER_ADMIN can manage permissions", entity.RoleSuperAdmin),
	OpCreatePermission: allow("Only SUPER_ADMIN can manage permissions", entity.RoleSuperAdmin),
	OpUpdatePermission: allow("Only SUPER_ADMIN can manage permissions", entity.RoleSuperAdmin),
	OpDeletePermission: allow("Only SUPER_ADMIN can manage permissions", entity.RoleSuperAdmin),

	OpListRoles:               allow("Only SUPER_ADMIN can view roles", entity.RoleSuperAdmin),
	OpCreateRole:              allow("Only SUPER_ADMIN can create roles", entity.RoleSuperAdmin),
	OpUpdateRole:              allow("Only SUPER_ADMIN can update roles", entity.RoleSuperAdmin),
	OpDeleteRole:              allow("Only SUPER_ADMIN can delete roles", entity.RoleSuperAdmin),
	OpAssignPermissionsToRole: allow("Only SUPER_ADMIN can assign permissions", entity.RoleSuperAdmin),

	OpListAdmins:  allow("Only SUPER_ADMIN can view admins", entity.RoleSuperAdmin),
	OpCreateAdmin: allow("Only SUPER_ADMIN can manage admins", entity.RoleSuperAdmin),
	OpUpdateAdmin: allow("Only SUPER_ADMIN can manage admins", entity.RoleSuperAdmin),
	OpDeleteAdmin: allow("Only SUPER_ADMIN can manage admins", entity.RoleSuperAdmin),

	OpListAstrologers:  allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpGetAstrologer:    allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpCreateAstrologer: allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpUpdateAstrologer: allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpDeleteAstrologer: allow("Only SUPER_ADMIN or MANAGER can delete astrologers", entity.RoleSuperAdmin, entity.RoleManager),

	OpScheduleInterview:     allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpAddAstrologerDocument: allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpVerifyDocument:        allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpApproveAstrologer:     allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),
	OpRejectAstrologer:      allow(MsgAdminOnly, entity.RoleAdmin, entity.RoleSuperAdmin),

	OpListAuditLogs: allow("Only SUPER_ADMIN can view audit logs", entity.RoleSuperAdmin),
}

// Authorize checks the actor in ctx against the operation's allowed role
// set. It fails closed: a missing actor, an unknown operation, or a role
// outside the set all yield an Unauthorized error carrying the operation's
// message.
func Authorize(ctx context.Context, op Operation) (Actor, error) {
	pol, ok := policies[op]
	if !ok {
		return Actor{}, apperr.Unauthorized(MsgAdminOnly)
	}

	actor, ok := ActorFromContext(ctx)
	if !ok {
		return Actor{}, apperr.Unauthorized(pol.message)
	}

	if _, allowed := pol.roles[actor.Role]; !allowed {
		return Actor{}, apperr.Unauthorized(pol.message)
	}

	return actor, nil
}

// DenialMessage returns the denial message declared for an operation.
// Exposed for audit logging of authorization outcomes.
func DenialMessage(op Operation) string {
	if pol, ok := policies[op]; ok {
		return pol.message
	}
	return MsgAdminOnly
}
