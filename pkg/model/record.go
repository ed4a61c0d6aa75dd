// pkg/model/record.go
package model

// RawRecord is a single row as read from the source table.
// It is immutable once read; Passthrough carries every column the
// pipeline does not touch so the report can echo them back.
type RawRecord struct {
	Email       *string                // Raw email value (nil if the source column was NULL)
	FacilityID  string                 // Grouping key for domain-suffix inference
	Passthrough map[string]interface{} // Untouched columns, copied verbatim to the output row
}

// CleanedRecord is the per-row output of the cleaning pipeline.
type CleanedRecord struct {
	RowID        string                 // Identifier assigned to the output row
	FacilityID   string                 // Copied from the raw record
	Original     *string                // Raw email exactly as read (nil if NULL)
	Formatted    *string                // Lowercased cleaned email, nil when null or still invalid
	InvalidEmail *string                // Final candidate string kept for inspection when still invalid
	ValidBefore  bool                   // Raw string passed validation before any transformation
	ValidAfter   bool                   // Final string passed validation
	Flags        ChangeFlags            // Audit markers for each transformation category
	Passthrough  map[string]interface{} // Untouched columns from the raw record
}

// IsNull reports whether the record was classified as a dynamic null.
func (r *CleanedRecord) IsNull() bool {
	return r.Flags.NullValue
}
