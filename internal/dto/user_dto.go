package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// UserData is the createUser mutation input. Field presence is validated by
// the service in a fixed order (name → rut → password → email) so the caller
// always learns the FIRST missing field; binding therefore carries no
// `required` tags.
type UserData struct {
	Name     string `json:"name"     validate:"omitempty,max=255"`
	Rut      string `json:"rut"      validate:"omitempty,max=64"`
	Password string `json:"password"`
	Email    string `json:"email"    validate:"omitempty,max=255"`
	IDRole   string `json:"idRole"   validate:"omitempty,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// UserResponse mirrors the public User shape. Password carries the stored
// hash, never the plaintext — the field is exposed on purpose, matching the
// upstream contract.
type UserResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Rut      string        `json:"rut"`
	Password string        `json:"password"`
	Email    string        `json:"email"`
	Role     *RoleResponse `json:"role"`
}
