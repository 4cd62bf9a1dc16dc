package usecase

var (
	ParseManifest = parseManifest
	WalkTree      = walkTree
)
