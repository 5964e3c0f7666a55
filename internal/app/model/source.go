package model

// SourceKind tags a SourceRef as either a remote URL or a local file path.
type SourceKind string

const (
	SourceKindURL  SourceKind = "url"
	SourceKindFile SourceKind = "file"
)

// SourceRef points at the media a run should process. It only lives for the
// duration of a single run.
type SourceRef struct {
	Kind  SourceKind
	Value string
}

// URLSource builds a SourceRef for a remote URL.
func URLSource(url string) SourceRef {
	return SourceRef{Kind: SourceKindURL, Value: url}
}

// FileSource builds a SourceRef for a local file path.
func FileSource(path string) SourceRef {
	return SourceRef{Kind: SourceKindFile, Value: path}
}
