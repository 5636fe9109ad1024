package usecase

import "strconv"

const (
	CatalogueVersionKey       = "catalogue:version"
	catalogueSnapshotKeyGlob  = "catalogue:snapshot:*"
	catalogueSnapshotKeyStart = "catalogue:snapshot:v"
)

// CatalogueSnapshotKey names the snapshot cached for one catalogue version.
// Bumping the version on every write makes older keys unreachable.
func CatalogueSnapshotKey(version int64) string {
	return catalogueSnapshotKeyStart + strconv.FormatInt(version, 10)
}
