package report

// UpgradeLevel exports upgradeLevel for testing.
var UpgradeLevel = upgradeLevel //nolint:gochecknoglobals // test export
