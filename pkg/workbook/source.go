package workbook

import "path/filepath"

// fileSource identifies an on-disk workbook.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a local workbook file.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a workbook inside an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a workbook inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// remoteSource references a hosted sheet document together with the local
// cache file the fetched copy is saved to.
type remoteSource struct {
	docID string
	cache string
}

func (s remoteSource) Location() string {
	return s.cache
}

func (s remoteSource) Kind() SourceKind {
	return SourceKindRemote
}

func (s remoteSource) DocID() string {
	return s.docID
}

// SourceFromRemote returns a Source for a hosted sheet document. The loader
// fetches the latest export, overwrites cachePath with it, and falls back to
// the existing cachePath when the fetch fails.
func SourceFromRemote(docID, cachePath string) Source {
	return remoteSource{docID: docID, cache: filepath.Clean(cachePath)}
}
