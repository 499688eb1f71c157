package limits

// Hard bounds that keep a single client call from growing without limit.
const (
	// MaxScanRows caps the rows materialized by one read.
	MaxScanRows = 100000

	// MaxQueryConditions caps the number of leaf predicates in one where tree.
	MaxQueryConditions = 1000

	// MaxOrderByFields caps ORDER BY terms.
	MaxOrderByFields = 20

	// MaxGroupByFields caps GROUP BY terms.
	MaxGroupByFields = 20

	// MaxSelectFields caps the columns a select may name.
	MaxSelectFields = 100

	// MaxIncludeDepth caps nested include / nested write depth.
	MaxIncludeDepth = 16

	// MaxInsertBatch is the row count per multi-row INSERT issued by createMany.
	MaxInsertBatch = 500

	// MaxInListSize is the parent keys per IN (...) when loading relations.
	MaxInListSize = 1000

	// MaxRawQuerySize is the largest raw SQL text accepted, in bytes.
	MaxRawQuerySize = 10 * 1024 * 1024
)
