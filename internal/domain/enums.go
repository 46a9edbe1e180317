package domain

import (
	"fmt"
	"strings"
)

type Variant string

const (
	VariantFrontend  Variant = "Frontend"
	VariantBackend   Variant = "Backend"
	VariantFullstack Variant = "Fullstack"
)

// Variants lists the accepted variants in form order.
var Variants = []Variant{VariantFrontend, VariantBackend, VariantFullstack}

// UsesEntityRules reports whether the role and entity rules apply.
func (v Variant) UsesEntityRules() bool {
	return v == VariantBackend || v == VariantFullstack
}

// ParseVariant accepts a variant name in any letter case. An empty string
// selects Frontend, matching the form's default selection.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return VariantFrontend, nil
	}
	for _, v := range Variants {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q (expected Frontend, Backend or Fullstack)", s)
}

type Verdict string

const (
	VerdictGo   Verdict = "GO"
	VerdictNoGo Verdict = "NOGO"
)

// Label returns the verdict as it appears in feedback text.
func (v Verdict) Label() string {
	if v == VerdictGo {
		return "GO"
	}
	return "NO GO"
}

// ParseVerdict accepts "GO", "NOGO", "NO GO" and "NO-GO" in any case.
func ParseVerdict(s string) (Verdict, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	switch norm {
	case "GO":
		return VerdictGo, nil
	case "NOGO":
		return VerdictNoGo, nil
	}
	return "", fmt.Errorf("unknown verdict %q (expected GO or NOGO)", s)
}
