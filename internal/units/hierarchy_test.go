package units

import (
	"testing"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		in   string
		want *int64
	}{
		{"12", def(12)},
		{" 5 ", def(5)},
		{"", nil},
		{"abc", nil},
		{"0", nil},
		{"-3", nil},
		{"1.5", nil},
	}
	for _, tt := range tests {
		got := ParseDefinition(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Fatalf("ParseDefinition(%q) = %d, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Fatalf("ParseDefinition(%q) = %v, want %d", tt.in, got, *tt.want)
		}
	}
}

func TestLevelConvertibleAndConfigured(t *testing.T) {
	piece := Level{Kind: enums.UnitKindPiece}
	if !piece.Convertible() || !piece.Configured() {
		t.Fatalf("piece is always convertible and configured")
	}

	bare := Level{Kind: enums.UnitKindPack}
	if bare.Convertible() || bare.Configured() {
		t.Fatalf("pack with no definition and no upc should be unused")
	}

	upcOnly := Level{Kind: enums.UnitKindCase, UPC: "0123456789"}
	if upcOnly.Convertible() {
		t.Fatalf("a upc gives no conversion role")
	}
	if !upcOnly.Configured() {
		t.Fatalf("a upc marks the unit as configured")
	}

	defined := Level{Kind: enums.UnitKindPack, Definition: def(12)}
	if !defined.Convertible() || !defined.Configured() {
		t.Fatalf("defined pack should be convertible and configured")
	}
}

func TestFind(t *testing.T) {
	levels := fullLadder()
	level, ok := Find(levels, enums.UnitKindCase)
	if !ok || level.Kind != enums.UnitKindCase {
		t.Fatalf("expected case level, got %+v ok=%v", level, ok)
	}
	if _, ok := Find(levels[:1], enums.UnitKindPallet); ok {
		t.Fatalf("pallet should not be found in a piece-only ladder")
	}
}
