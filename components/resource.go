package components

import "github.com/lixenwraith/space-miner/constants"

// ResourceKind identifies a minable resource
type ResourceKind int

const (
	ResourceIron ResourceKind = iota
	ResourceCrystal
	ResourceGold

	// ResourceKindCount is the number of resource kinds, used to size cargo holds
	ResourceKindCount
)

// AllResourceKinds lists kinds in display order
var AllResourceKinds = [ResourceKindCount]ResourceKind{ResourceIron, ResourceCrystal, ResourceGold}

func (k ResourceKind) String() string {
	switch k {
	case ResourceIron:
		return "iron"
	case ResourceCrystal:
		return "crystal"
	case ResourceGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Glyph returns the rune drawn for a resource node of this kind
func (k ResourceKind) Glyph() rune {
	switch k {
	case ResourceIron:
		return constants.IronGlyph
	case ResourceCrystal:
		return constants.CrystalGlyph
	case ResourceGold:
		return constants.GoldGlyph
	default:
		return '?'
	}
}

// Valid reports whether k is a known kind
func (k ResourceKind) Valid() bool {
	return k >= 0 && k < ResourceKindCount
}

// ResourceComponent marks a minable resource node
type ResourceComponent struct {
	Kind ResourceKind
}
