package model

import "sort"

// Role is an authorization tag controlling which operations a user may perform.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleBarista  Role = "Barista"
	RoleAdmin    Role = "Admin"
)

// ParseRole maps a string to a known role tag.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleBarista, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// RoleSet is an immutable set of role tags. Grant and Revoke return a new
// set, the receiver is never modified.
type RoleSet struct {
	roles []Role
}

// NewRoleSet builds a set from the provided tags, dropping duplicates.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s = s.Grant(r)
	}
	return s
}

// RoleSetFromStrings restores a set from its persisted representation.
// Unknown tags are skipped.
func RoleSetFromStrings(values []string) RoleSet {
	var s RoleSet
	for _, v := range values {
		if r, ok := ParseRole(v); ok {
			s = s.Grant(r)
		}
	}
	return s
}

// Has reports whether the set contains the given role.
func (s RoleSet) Has(r Role) bool {
	for _, held := range s.roles {
		if held == r {
			return true
		}
	}
	return false
}

// Grant returns a set that additionally contains r.
func (s RoleSet) Grant(r Role) RoleSet {
	if s.Has(r) {
		return s
	}
	next := make([]Role, 0, len(s.roles)+1)
	next = append(next, s.roles...)
	next = append(next, r)
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return RoleSet{roles: next}
}

// Revoke returns a set without r.
func (s RoleSet) Revoke(r Role) RoleSet {
	if !s.Has(r) {
		return s
	}
	next := make([]Role, 0, len(s.roles)-1)
	for _, held := range s.roles {
		if held != r {
			next = append(next, held)
		}
	}
	return RoleSet{roles: next}
}

// Len returns the number of roles in the set.
func (s RoleSet) Len() int {
	return len(s.roles)
}

// Strings returns the sorted role tags for persistence and responses.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s.roles))
	for i, r := range s.roles {
		out[i] = string(r)
	}
	return out
}
