package histcmp

// Match returns the paths present in every enumeration, in the order of the
// first one. Later listings only filter; they never reorder.
func Match(enums ...[]Object) []string {
	if len(enums) == 0 {
		return nil
	}

	var (
		set  = make([]string, 0, len(enums[0]))
		seen = make(map[string]bool, len(enums[0]))
	)
	for _, obj := range enums[0] {
		if seen[obj.Path] {
			continue
		}
		seen[obj.Path] = true
		set = append(set, obj.Path)
	}

	for _, objs := range enums[1:] {
		present := make(map[string]bool, len(objs))
		for _, obj := range objs {
			present[obj.Path] = true
		}
		kept := set[:0]
		for _, path := range set {
			if present[path] {
				kept = append(kept, path)
			}
		}
		set = kept
	}
	return set
}
