// pkg/report/values.go
package report

import (
	"strconv"

	"github.com/David-Botos/email-cleanse/pkg/model"
)

// reportRow is the flattened, serializable form of a cleaned record.
// Booleans are serialized as 0/1 per the documented output schema.
type reportRow struct {
	RunID                 string  `db:"run_id"`
	RowID                 string  `db:"row_id"`
	FacilityID            string  `db:"facility_id"`
	Email                 *string `db:"e_mail"`
	FormattedEmail        *string `db:"formatted_email"`
	ValidBefore           int16   `db:"valid_before"`
	ValidAfter            int16   `db:"valid_after"`
	InvalidEmail          *string `db:"invalid_email"`
	NullValue             int16   `db:"null_value"`
	RemovedSpaces         int16   `db:"removed_spaces"`
	ExtractedFromWrappers int16   `db:"extracted_from_wrappers"`
	DomainChange          int16   `db:"domain_change"`
	TypoFix               int16   `db:"typo_fix"`
	Punctuation           int16   `db:"punctuation"`
	TokenReplacement      int16   `db:"token_replacement"`
	NoChange              int16   `db:"no_change"`
}

// newReportRow flattens a cleaned record for persistence.
func newReportRow(runID string, rec model.CleanedRecord) reportRow {
	return reportRow{
		RunID:                 runID,
		RowID:                 rec.RowID,
		FacilityID:            rec.FacilityID,
		Email:                 rec.Original,
		FormattedEmail:        rec.Formatted,
		ValidBefore:           boolToBit(rec.ValidBefore),
		ValidAfter:            boolToBit(rec.ValidAfter),
		InvalidEmail:          rec.InvalidEmail,
		NullValue:             boolToBit(rec.Flags.NullValue),
		RemovedSpaces:         boolToBit(rec.Flags.RemovedSpaces),
		ExtractedFromWrappers: boolToBit(rec.Flags.ExtractedFromWrappers),
		DomainChange:          boolToBit(rec.Flags.DomainChange),
		TypoFix:               boolToBit(rec.Flags.TypoFix),
		Punctuation:           boolToBit(rec.Flags.Punctuation),
		TokenReplacement:      boolToBit(rec.Flags.TokenReplacement),
		NoChange:              boolToBit(rec.Flags.NoChange),
	}
}

// boolToBit serializes a boolean flag as 0/1
func boolToBit(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// bitString renders a 0/1 flag for the CSV sink
func bitString(b int16) string {
	return strconv.Itoa(int(b))
}

// nullableString renders a nullable value for the CSV sink, empty when
// NULL
func nullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
