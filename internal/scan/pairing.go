package scan

// Group is one logical capture: a still, a clip, or a live pair sharing a
// stem. Exactly one of Image/Video may be nil.
type Group struct {
	Stem  string
	Image *SourceFile
	Video *SourceFile
}

// Live reports whether the group pairs a still with a companion video.
func (g Group) Live() bool { return g.Image != nil && g.Video != nil }

// Conflict records source files dropped because their stem group already had
// a file of the same kind. The first file in enumeration order is kept; the
// catalog is built regardless, so conflicts are diagnostics, not errors.
type Conflict struct {
	Stem    string
	Kind    Kind
	Kept    string
	Dropped []string
}

// Classify groups files by exact stem match and pairs images with companion
// videos. Files with unrecognized extensions produce no group. Group order
// follows first appearance in the input, which Scan keeps sorted by name, so
// classification is deterministic for a fixed source set.
func Classify(files []SourceFile) ([]Group, []Conflict) {
	index := make(map[string]int)
	groups := make([]Group, 0, len(files))
	var conflicts []Conflict

	for i := range files {
		file := &files[i]
		if file.Kind == KindOther {
			continue
		}

		pos, ok := index[file.Stem]
		if !ok {
			pos = len(groups)
			index[file.Stem] = pos
			groups = append(groups, Group{Stem: file.Stem})
		}
		group := &groups[pos]

		switch file.Kind {
		case KindImage:
			if group.Image == nil {
				group.Image = file
				continue
			}
			conflicts = recordConflict(conflicts, group.Stem, KindImage, group.Image.Path, file.Path)
		case KindVideo:
			if group.Video == nil {
				group.Video = file
				continue
			}
			conflicts = recordConflict(conflicts, group.Stem, KindVideo, group.Video.Path, file.Path)
		}
	}

	return groups, conflicts
}

func recordConflict(conflicts []Conflict, stem string, kind Kind, kept, dropped string) []Conflict {
	for i := range conflicts {
		if conflicts[i].Stem == stem && conflicts[i].Kind == kind {
			conflicts[i].Dropped = append(conflicts[i].Dropped, dropped)
			return conflicts
		}
	}
	return append(conflicts, Conflict{Stem: stem, Kind: kind, Kept: kept, Dropped: []string{dropped}})
}
