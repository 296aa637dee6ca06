package defs

import "go-survivor/internal/component"

// UpgradeDefinition describes one choice of the level-up menu.
type UpgradeDefinition struct {
	ID      component.UpgradeID
	Label   string
	Hint    string
	Special bool // показывается только на каждом N-м уровне
}

// UpgradeLibrary lists every upgrade in menu order: standard first, specials last.
var UpgradeLibrary = []UpgradeDefinition{
	{ID: component.UpgradeAttackSpeed, Label: "Attack Speed", Hint: "-50ms between volleys"},
	{ID: component.UpgradeAttackPower, Label: "Attack Power", Hint: "+10 damage"},
	{ID: component.UpgradeMoveSpeed, Label: "Move Speed", Hint: "+1 speed"},
	{ID: component.UpgradeBulletCount, Label: "Bullet Count", Hint: "+1 bullet per volley", Special: true},
	{ID: component.UpgradeBulletSize, Label: "Bullet Size", Hint: "+2 bullet size", Special: true},
}

// LookupUpgrade finds an upgrade definition by its identifier.
func LookupUpgrade(id component.UpgradeID) (UpgradeDefinition, bool) {
	for _, def := range UpgradeLibrary {
		if def.ID == id {
			return def, true
		}
	}
	return UpgradeDefinition{}, false
}

// OfferedUpgrades returns the choices for the given level.
// Specials are included when level is a multiple of specialEvery.
func OfferedUpgrades(level, specialEvery int) []UpgradeDefinition {
	withSpecial := specialEvery > 0 && level%specialEvery == 0
	offered := make([]UpgradeDefinition, 0, len(UpgradeLibrary))
	for _, def := range UpgradeLibrary {
		if def.Special && !withSpecial {
			continue
		}
		offered = append(offered, def)
	}
	return offered
}
