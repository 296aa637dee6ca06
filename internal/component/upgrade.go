package component

// UpgradeID identifies a stat the player can raise on level up.
type UpgradeID string

const (
	UpgradeAttackSpeed UpgradeID = "attackSpeed"
	UpgradeAttackPower UpgradeID = "attackPower"
	UpgradeMoveSpeed   UpgradeID = "moveSpeed"
	UpgradeBulletCount UpgradeID = "bulletCount"
	UpgradeBulletSize  UpgradeID = "bulletSize"
)
