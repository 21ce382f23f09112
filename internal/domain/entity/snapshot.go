package entity

// SnapshotCause tags a snapshot request so consumers can tell an explicit
// capture apart from the automatic one taken after every finished load.
type SnapshotCause int

const (
	SnapshotExplicit SnapshotCause = iota
	SnapshotPostLoad
)

func (c SnapshotCause) String() string {
	if c == SnapshotPostLoad {
		return "post-load"
	}
	return "explicit"
}
