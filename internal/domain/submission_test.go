package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission_ExplicitPresenceDefaultsOn(t *testing.T) {
	s := NewSubmission(VariantBackend)
	assert.Equal(t, VariantBackend, s.Variant)
	assert.True(t, s.UserExplicit)
	assert.True(t, s.SecurityExplicit)
	assert.False(t, s.UserImplicit)
	assert.False(t, s.SecurityImplicit)
	assert.Nil(t, s.ManualVerdict)
}

func TestSubmissionReset_KeepDeadline(t *testing.T) {
	s := NewSubmission(VariantFullstack)
	s.Name = "Sanne"
	s.Roles = "admin\nklant"
	s.Deadline = "12 december"
	s.UserExplicit = false
	s.UserImplicit = true

	s.Reset(true)

	assert.Empty(t, s.Name)
	assert.Empty(t, s.Roles)
	assert.Equal(t, "12 december", s.Deadline)
	assert.Equal(t, VariantFullstack, s.Variant, "variant selection survives a reset")
	assert.True(t, s.UserExplicit)
	assert.False(t, s.UserImplicit)
}

func TestSubmissionReset_ClearDeadline(t *testing.T) {
	s := NewSubmission(VariantFrontend)
	s.Deadline = "12 december"
	s.Reset(false)
	assert.Empty(t, s.Deadline)
}

func TestSubmissionWithVerdict_CopiesPointer(t *testing.T) {
	v := VerdictGo
	s := NewSubmission(VariantFrontend).WithVerdict(&v)
	require.NotNil(t, s.ManualVerdict)

	v = VerdictNoGo
	assert.Equal(t, VerdictGo, *s.ManualVerdict, "caller mutations must not leak into the submission")

	cleared := s.WithVerdict(nil)
	assert.Nil(t, cleared.ManualVerdict)
}

func TestRules_Defaults(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 4, r.MinFunctionalities)
	assert.Equal(t, EntityBounds{Min: 6, Max: 7}, r.EntityBoundsFor(VariantBackend))
	assert.Equal(t, EntityBounds{Min: 5, Max: 6}, r.EntityBoundsFor(VariantFullstack))
	assert.Equal(t, EntityBounds{Min: 4, Max: 5}, r.EntityBoundsFor(VariantFrontend))
}

func TestRules_RoleBoundsInclusive(t *testing.T) {
	r := DefaultRules()
	assert.False(t, r.RolesWithinBounds(1))
	assert.True(t, r.RolesWithinBounds(2))
	assert.True(t, r.RolesWithinBounds(3))
	assert.False(t, r.RolesWithinBounds(4))
}

func TestRules_EntityBoundsFallback(t *testing.T) {
	r := Rules{MinRoles: 2, MaxRoles: 3}
	assert.Equal(t, EntityBounds{Min: 6, Max: 7}, r.EntityBoundsFor(VariantBackend))
	assert.True(t, EntityBounds{Min: 6, Max: 7}.Contains(7))
	assert.False(t, EntityBounds{Min: 6, Max: 7}.Contains(8))
}
