package types

// ReleaseRecord is the subset of a package index version record the
// updater needs: the source distribution download URL and its published
// digest. It is fetched per invocation and never persisted.
type ReleaseRecord struct {
	Version   string
	SourceURL string
	SHA256    string
}
