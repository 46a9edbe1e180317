package domain

// EntityBounds is the inclusive entity-count range for a variant.
type EntityBounds struct {
	Min int
	Max int
}

// Contains reports whether n lies within the inclusive bounds.
func (b EntityBounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Rules holds the numeric thresholds used to judge a submission.
type Rules struct {
	MinFunctionalities int
	MinRoles           int
	MaxRoles           int
	Entities           map[Variant]EntityBounds
}

// DefaultRules returns the thresholds of the idea phase assignment.
func DefaultRules() Rules {
	return Rules{
		MinFunctionalities: 4,
		MinRoles:           2,
		MaxRoles:           3,
		Entities: map[Variant]EntityBounds{
			VariantBackend:   {Min: 6, Max: 7},
			VariantFullstack: {Min: 5, Max: 6},
			VariantFrontend:  {Min: 4, Max: 5},
		},
	}
}

// EntityBoundsFor returns the bounds for v, falling back to the default
// table when the rules carry no entry for it.
func (r Rules) EntityBoundsFor(v Variant) EntityBounds {
	if b, ok := r.Entities[v]; ok {
		return b
	}
	return DefaultRules().Entities[v]
}

// RolesWithinBounds reports whether n satisfies the role rule. The role
// bounds are the same for every variant.
func (r Rules) RolesWithinBounds(n int) bool {
	return n >= r.MinRoles && n <= r.MaxRoles
}
