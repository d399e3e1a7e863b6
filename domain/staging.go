package domain

// StagingPath is where a download lands while the gateway is writing it.
// The completion step moves it onto the final path; a crash leaves at worst
// a stale .part file, never a truncated destination.
func StagingPath(finalPath string) string {
	return finalPath + ".part"
}
