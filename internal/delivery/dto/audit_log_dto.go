package dto

import (
	"time"

	"astro-admin-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	AdminID   *uuid.UUID  `json:"admin_id,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Data        []AuditLogResponse `json:"data"`
	TotalCount  int64              `json:"total_count"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
}
