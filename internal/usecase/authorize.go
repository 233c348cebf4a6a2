package usecase

import (
	"context"

	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/guard"
	"astro-admin-api/internal/service"

	"github.com/google/uuid"
)

// authorize runs the guard check for op and records denied attempts on the
// audit trail. Granted operations record their own domain action after they
// commit, so only denials are logged here.
func authorize(ctx context.Context, op guard.Operation, audit service.AuditService) (guard.Actor, error) {
	actor, err := guard.Authorize(ctx, op)
	if err == nil {
		return actor, nil
	}

	metadata := entity.JSON{
		"operation": string(op),
		"reason":    guard.DenialMessage(op),
	}
	var adminID *uuid.UUID
	if known, ok := guard.ActorFromContext(ctx); ok {
		adminID = &known.AdminID
		metadata["role"] = known.Role
	}
	audit.Record(adminID, entity.AuditActionAuthorizationDenied, metadata)

	return actor, err
}
