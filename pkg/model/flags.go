// pkg/model/flags.go
package model

// ChangeFlags records which transformation categories fired for a record.
// A fixed struct rather than a dynamic set so the compiler checks that
// every stage reports its flag. Flags are not mutually exclusive except
// NoChange, which is true iff no other flag fired.
type ChangeFlags struct {
	RemovedSpaces         bool // Whitespace was stripped or collapsed
	ExtractedFromWrappers bool // Address was recovered from brackets/mailto/tracking URL
	DomainChange          bool // Missing domain suffix inferred from the facility
	TypoFix               bool // Table-driven suffix fix, @@ collapse, or separator promotion
	Punctuation           bool // Repeated-dot collapse or stray edge punctuation stripped
	TokenReplacement      bool // A token-replacement table entry fired
	NullValue             bool // Classified as a dynamic null
	NoChange              bool // Computed last: no other flag fired
}

// Any reports whether any transformation flag fired (NoChange excluded).
func (f ChangeFlags) Any() bool {
	return f.RemovedSpaces ||
		f.ExtractedFromWrappers ||
		f.DomainChange ||
		f.TypoFix ||
		f.Punctuation ||
		f.TokenReplacement ||
		f.NullValue
}

// Finalize computes the NoChange flag from the others and returns the
// completed flag set. Called exactly once, after the last stage.
func (f ChangeFlags) Finalize() ChangeFlags {
	f.NoChange = !f.Any()
	return f
}
