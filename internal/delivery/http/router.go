package http

import (
	"fmt"
	"net/http"

	"astro-admin-api/internal/delivery/http/handler"
	"astro-admin-api/internal/delivery/http/middleware"
	"astro-admin-api/internal/service"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	permissionHandler *handler.PermissionHandler
	roleHandler       *handler.RoleHandler
	adminHandler      *handler.AdminHandler
	userHandler       *handler.UserHandler
	astrologerHandler *handler.AstrologerHandler
	approvalHandler   *handler.ApprovalHandler
	auditLogHandler   *handler.AuditLogHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	auditService      service.AuditService
}

func NewRouter(
	authHandler *handler.AuthHandler,
	permissionHandler *handler.PermissionHandler,
	roleHandler *handler.RoleHandler,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
	astrologerHandler *handler.AstrologerHandler,
	approvalHandler *handler.ApprovalHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	auditService service.AuditService,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		permissionHandler: permissionHandler,
		roleHandler:       roleHandler,
		adminHandler:      adminHandler,
		userHandler:       userHandler,
		astrologerHandler: astrologerHandler,
		approvalHandler:   approvalHandler,
		auditLogHandler:   auditLogHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		auditService:      auditService,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// All remaining routes require authentication. Per-operation role
	// checks live in the guard, not in routing middleware.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Permission management
	protected.HandleFunc("/permissions", r.permissionHandler.CreatePermission).Methods(http.MethodPost)
	protected.HandleFunc("/permissions", r.permissionHandler.ListPermissions).Methods(http.MethodGet)
	protected.HandleFunc("/permissions/{id}", r.permissionHandler.UpdatePermission).Methods(http.MethodPut)
	protected.HandleFunc("/permissions/{id}", r.permissionHandler.DeletePermission).Methods(http.MethodDelete)

	// Role management
	protected.HandleFunc("/roles", r.roleHandler.CreateRole).Methods(http.MethodPost)
	protected.HandleFunc("/roles", r.roleHandler.ListRoles).Methods(http.MethodGet)
	protected.HandleFunc("/roles/{id}", r.roleHandler.UpdateRole).Methods(http.MethodPut)
	protected.HandleFunc("/roles/{id}", r.roleHandler.DeleteRole).Methods(http.MethodDelete)
	protected.HandleFunc("/roles/{id}/permissions", r.roleHandler.AssignPermissions).Methods(http.MethodPost)

	// Admin account management
	protected.HandleFunc("/admins", r.adminHandler.CreateAdmin).Methods(http.MethodPost)
	protected.HandleFunc("/admins", r.adminHandler.ListAdmins).Methods(http.MethodGet)
	protected.HandleFunc("/admins/{id}", r.adminHandler.UpdateAdmin).Methods(http.MethodPut)
	protected.HandleFunc("/admins/{id}", r.adminHandler.DeleteAdmin).Methods(http.MethodDelete)

	// User management
	protected.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	protected.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Astrologer management
	protected.HandleFunc("/astrologers", r.astrologerHandler.CreateAstrologer).Methods(http.MethodPost)
	protected.HandleFunc("/astrologers", r.astrologerHandler.ListAstrologers).Methods(http.MethodGet)
	protected.HandleFunc("/astrologers/pending", r.astrologerHandler.ListPendingAstrologers).Methods(http.MethodGet)
	protected.HandleFunc("/astrologers/approved", r.astrologerHandler.ListApprovedAstrologers).Methods(http.MethodGet)
	protected.HandleFunc("/astrologers/rejected", r.astrologerHandler.ListRejectedAstrologers).Methods(http.MethodGet)
	protected.HandleFunc("/astrologers/{id}", r.astrologerHandler.GetAstrologer).Methods(http.MethodGet)
	protected.HandleFunc("/astrologers/{id}", r.astrologerHandler.UpdateAstrologer).Methods(http.MethodPut)
	protected.HandleFunc("/astrologers/{id}", r.astrologerHandler.DeleteAstrologer).Methods(http.MethodDelete)

	// Approval workflow
	protected.HandleFunc("/astrologers/{id}/interviews", r.approvalHandler.ScheduleInterview).Methods(http.MethodPost)
	protected.HandleFunc("/astrologers/{id}/documents", r.approvalHandler.AddDocument).Methods(http.MethodPost)
	protected.HandleFunc("/astrologers/{id}/documents/{documentId}/verify", r.approvalHandler.VerifyDocument).Methods(http.MethodPut)
	protected.HandleFunc("/astrologers/{id}/approve", r.approvalHandler.ApproveAstrologer).Methods(http.MethodPut)
	protected.HandleFunc("/astrologers/{id}/reject", r.approvalHandler.RejectAstrologer).Methods(http.MethodPut)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status": "ok", "audit_events_dropped": %d}`, r.auditService.Dropped())
}
