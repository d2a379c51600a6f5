package mclog

// compiledFilter decides which chat messages survive parsing.
// Exclude takes precedence over include for both sources and names.
type compiledFilter struct {
	include      map[SourceKind]struct{}
	exclude      map[SourceKind]struct{}
	includeNames map[string]struct{}
	excludeNames map[string]struct{}
}

func newCompiledFilter(include, exclude []SourceKind) *compiledFilter {
	f := &compiledFilter{}
	f.setSources(include, exclude)
	return f
}

func (f *compiledFilter) setSources(include, exclude []SourceKind) {
	f.include = kindSet(include)
	f.exclude = kindSet(exclude)
}

func (f *compiledFilter) setNames(include, exclude []string) {
	f.includeNames = nameSet(include)
	f.excludeNames = nameSet(exclude)
}

// Allows reports whether msg passes the filter.
// Name rules only apply to named messages; names match exactly.
func (f *compiledFilter) Allows(msg ChatMessage) bool {
	if f == nil {
		return true
	}

	kind := msg.Source.Kind
	if _, ok := f.exclude[kind]; ok {
		return false
	}
	if len(f.include) > 0 {
		if _, ok := f.include[kind]; !ok {
			return false
		}
	}

	if kind != SourceNamed {
		return true
	}
	name := msg.Source.Name
	if _, ok := f.excludeNames[name]; ok {
		return false
	}
	if len(f.includeNames) > 0 {
		if _, ok := f.includeNames[name]; !ok {
			return false
		}
	}
	return true
}

func kindSet(kinds []SourceKind) map[SourceKind]struct{} {
	if len(kinds) == 0 {
		return nil
	}
	m := make(map[SourceKind]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}

func nameSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
