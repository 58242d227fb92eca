package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// RoleData is the createRole / editRole mutation input. Name is optional at
// the wire level (the schema allows null); the service rejects a missing name
// on create, so no `required` tag here — presence is a business rule, not a
// binding rule.
type RoleData struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type RoleResponse struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}
