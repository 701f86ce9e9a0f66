// Package table provides the in-memory record table passed between the fetch,
// assembly, and cleaning layers.
//
// A Table is an ordered sequence of rows over a fixed set of named columns,
// with nil marking a missing value. The package covers the tabular operations
// the datasets need: CSV and parquet decoding, concatenation by column union,
// column projection, grouping, joining, and de-duplication. Concatenating
// tables with differing schemas fills absent cells with missing values;
// projecting to a column a table does not define fails with ErrUnknownColumn.
package table
