package types

// Canonical column names, in the fixed order used by the remote sheet and
// the CSV export.
const (
	ColumnDateAdded  = "Date Added"
	ColumnItemNeeded = "Item Needed"
	ColumnQuantity   = "Quantity"
	ColumnWhereToGet = "Where to Get"
	ColumnUrgency    = "Urgency"
	ColumnCompleted  = "Completed"
)

// CanonicalColumns lists all column names in canonical order.
var CanonicalColumns = []string{
	ColumnDateAdded,
	ColumnItemNeeded,
	ColumnQuantity,
	ColumnWhereToGet,
	ColumnUrgency,
	ColumnCompleted,
}
