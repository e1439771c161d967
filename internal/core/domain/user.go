package domain

import (
	"slices"
	"time"
)

// Role is one of the fixed dashboard roles. Managers see the data of the
// sub-admins assigned to them.
type Role string

const (
	RoleAdvertiser        Role = "advertiser"
	RoleAdvertiserManager Role = "advertiser_manager"
	RolePublisher         Role = "publisher"
	RolePublisherManager  Role = "publisher_manager"
)

// Side values group roles by the half of the network they work on.
const (
	SideAdvertiser = "advertiser"
	SidePublisher  = "publisher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdvertiser, RoleAdvertiserManager, RolePublisher, RolePublisherManager:
		return true
	}
	return false
}

// Side returns "advertiser" or "publisher". Unknown roles have no side.
func (r Role) Side() string {
	switch r {
	case RoleAdvertiser, RoleAdvertiserManager:
		return SideAdvertiser
	case RolePublisher, RolePublisherManager:
		return SidePublisher
	}
	return ""
}

// IsManager reports whether the role manages sub-admins.
func (r Role) IsManager() bool {
	return r == RoleAdvertiserManager || r == RolePublisherManager
}

// IDRange is an inclusive numeric range of identifiers granted to a user.
// Bounds stay strings so malformed grants reach the allocator, which skips
// them.
type IDRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Session is the authenticated user's profile as carried by the dashboard.
type Session struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	Role              Role      `json:"role"`
	AssignedSubadmins []int64   `json:"assigned_subadmins"`
	Ranges            []IDRange `json:"ranges"`
}

// Empty reports whether s carries no authenticated user.
func (s Session) Empty() bool {
	return s.ID == 0 && s.Username == ""
}

// CanRead reports whether records owned by ownerID are visible.
func (s Session) CanRead(ownerID int64) bool {
	if ownerID == s.ID {
		return true
	}
	return s.Role.IsManager() && slices.Contains(s.AssignedSubadmins, ownerID)
}

// CanWrite reports whether records owned by ownerID may be changed.
// Managers only read and assign; they never edit a sub-admin's rows.
func (s Session) CanWrite(ownerID int64) bool {
	return ownerID == s.ID
}

// OwnerScope returns every owner id whose records the session can read.
func (s Session) OwnerScope() []int64 {
	scope := []int64{s.ID}
	if s.Role.IsManager() {
		for _, id := range s.AssignedSubadmins {
			if !slices.Contains(scope, id) {
				scope = append(scope, id)
			}
		}
	}
	return scope
}

// User is a stored dashboard account.
type User struct {
	ID                int64
	Username          string
	PasswordHash      string
	Role              Role
	AssignedSubadmins []int64
	Ranges            []IDRange
	CreatedAt         time.Time
}

// Session projects the account into its session profile.
func (u User) Session() Session {
	return Session{
		ID:                u.ID,
		Username:          u.Username,
		Role:              u.Role,
		AssignedSubadmins: slices.Clone(u.AssignedSubadmins),
		Ranges:            slices.Clone(u.Ranges),
	}
}

// DirectoryEntry is a user as listed in the sub-admin directory.
type DirectoryEntry struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
