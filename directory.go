package cfb

import "fmt"

// EntryAt resolves directory entry id to a view into the image. Passing
// NO_STREAM returns (nil, nil), mirroring the optional child and sibling
// links of the directory tree.
func (f *CompoundFile) EntryAt(id uint32) (*DirEntry, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}

	if id == NO_STREAM {
		return nil, nil
	}

	entriesPerSector := f.sectorLen / DIR_ENTRY_LEN
	sector := f.header.FirstDirectorySectorLocation()
	remaining := id

	for entriesPerSector <= remaining && sector != END_OF_CHAIN {
		remaining -= entriesPerSector
		next, err := f.nextSector(sector)
		if err != nil {
			return nil, err
		}
		sector = next
	}

	if sector == END_OF_CHAIN {
		return nil, fmt.Errorf("%w: directory chain ends before entry %d", ErrCorruptChain, id)
	}

	b, err := f.sectorBytes(sector, remaining*DIR_ENTRY_LEN, DIR_ENTRY_LEN)
	if err != nil {
		return nil, err
	}

	return &DirEntry{b: b, id: id}, nil
}

// RootEntry resolves directory entry 0, the root storage.
func (f *CompoundFile) RootEntry() (*DirEntry, error) {
	return f.EntryAt(ROOT_STREAM_ID)
}

// IterateAll visits every entry reachable from the root storage's child
// subtree. Each entry is visited before its child subtree, then the left
// sibling subtree, then the right. Depth grows across the child link only.
func (f *CompoundFile) IterateAll(callback func(entry *DirEntry, depth int)) error {
	root, err := f.RootEntry()
	if err != nil {
		return err
	}
	return f.iterateNodes(root.Child(), callback)
}

// IterateFrom visits the subtree below entry, in the same order as
// IterateAll.
func (f *CompoundFile) IterateFrom(entry *DirEntry, callback func(entry *DirEntry, depth int)) error {
	if err := f.ready(); err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidArgument)
	}
	return f.iterateNodes(entry.Child(), callback)
}

type dirVisit struct {
	id    uint32
	depth int
}

// iterateNodes walks the sibling/child tree with an explicit stack. Every
// index is visited at most once; a revisited or unresolvable index fails
// the walk, which bounds it by the directory entry count.
func (f *CompoundFile) iterateNodes(start uint32, callback func(entry *DirEntry, depth int)) error {
	visited := make(map[uint32]bool)
	stack := []dirVisit{{id: start, depth: 0}}

	for len(stack) > 0 {
		visit := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visit.id == NO_STREAM {
			continue
		}

		if visited[visit.id] {
			return fmt.Errorf("%w: entry %d is linked twice", ErrCorruptDirectory, visit.id)
		}
		visited[visit.id] = true

		entry, err := f.EntryAt(visit.id)
		if err != nil {
			return fmt.Errorf("%w: entry %d is unresolvable: %v", ErrCorruptDirectory, visit.id, err)
		}

		callback(entry, visit.depth)

		// Pushed in reverse so the child subtree is visited first, then the
		// left sibling subtree, then the right.
		stack = append(stack,
			dirVisit{id: entry.RightSibling(), depth: visit.depth},
			dirVisit{id: entry.LeftSibling(), depth: visit.depth},
			dirVisit{id: entry.Child(), depth: visit.depth + 1},
		)
	}

	return nil
}

// EntryByPath resolves a "/"-separated path of entry names, descending one
// storage level per name through the red-black sibling order.
func (f *CompoundFile) EntryByPath(path string) (*DirEntry, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}

	entry, err := f.RootEntry()
	if err != nil {
		return nil, err
	}

	for _, name := range NameChainFromPath(path) {
		entry, err = f.findChild(entry, name)
		if err != nil {
			return nil, err
		}
	}

	return entry, nil
}

// findChild binary-searches the subtree rooted at parent's child link for
// an entry with the given name.
func (f *CompoundFile) findChild(parent *DirEntry, name string) (*DirEntry, error) {
	visited := make(map[uint32]bool)
	id := parent.Child()

	for id != NO_STREAM {
		if visited[id] {
			return nil, fmt.Errorf("%w: entry %d is linked twice", ErrCorruptDirectory, id)
		}
		visited[id] = true

		entry, err := f.EntryAt(id)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d is unresolvable: %v", ErrCorruptDirectory, id, err)
		}

		switch CompareNames(name, entry.Name()) {
		case OrderEqual:
			return entry, nil
		case OrderLess:
			id = entry.LeftSibling()
		case OrderGreater:
			id = entry.RightSibling()
		}
	}

	return nil, fmt.Errorf("%w: entry not found: %s", ErrInvalidArgument, name)
}
