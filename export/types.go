package export

// Row is one row of the compact or original edge table: the
// edge's own columns plus the coordinates of both endpoints, denormalized
// so a consumer never has to join back against a vertex table.
type Row struct {
	ID      int
	FromID  string
	ToID    string
	FromLat float64
	FromLon float64
	ToLat   float64
	ToLon   float64
	Dist    float64
	Weight  float64
	Highway string
}

// CompactRow and OriginalRow name Row for each table it appears in:
// the schema is identical, so this is an alias rather than a
// duplicate struct.
type (
	CompactRow  = Row
	OriginalRow = Row
)

// MapRow is one row of the compact-to-original id map: it
// says compact edge CompactID represents original edge OriginalID
// among (possibly several) others. An edge that survived untouched is
// its own sole entry.
type MapRow struct {
	CompactID  int
	OriginalID int
}

// Tables is the Exporter's full output.
type Tables struct {
	Compact  []Row
	Original []Row
	Map      []MapRow
}
