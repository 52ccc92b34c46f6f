package dataframe

import "maps"

// nameIndex maps a column name to the position of the first column that
// carries it.
type nameIndex map[string]int

func buildIndex(names []string) nameIndex {
	ix := make(nameIndex, len(names))
	for i, name := range names {
		ix.add(name, i)
	}
	return ix
}

func (ix nameIndex) lookup(name string) (int, bool) {
	pos, ok := ix[name]
	return pos, ok
}

// add registers name at pos unless the name is already present.
func (ix nameIndex) add(name string, pos int) {
	if _, ok := ix[name]; !ok {
		ix[name] = pos
	}
}

// remove drops the column at pos and closes the gap it leaves. names is the
// column name list after the removal; a surviving duplicate of the removed
// name is re-registered at its first position.
func (ix nameIndex) remove(name string, pos int, names []string) {
	delete(ix, name)
	for k, p := range ix {
		if p > pos {
			ix[k] = p - 1
		}
	}
	for i, n := range names {
		if n == name {
			ix[name] = i
			break
		}
	}
}

func (ix nameIndex) clone() nameIndex {
	return maps.Clone(ix)
}
