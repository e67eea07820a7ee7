package internal

// DeduplicatePaths removes duplicate paths, keeping the first occurrence of
// each and preserving order. The pipeline itself keeps raw duplicates; this
// is applied by presentation code before display or export.
func DeduplicatePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var unique []string

	for _, path := range paths {
		if !seen[path] {
			seen[path] = true
			unique = append(unique, path)
		}
	}

	return unique
}
