package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

const sheetName = "Sheet1"

// WriteTranscriptXLSX writes a simulator transcript as an XLSX workbook.
func WriteTranscriptXLSX(w io.Writer, exchanges []domain.Exchange) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, toAny(transcriptColumns)); err != nil {
		return err
	}
	for i := range exchanges {
		row := []any{
			i + 1,
			exchanges[i].Question,
			exchanges[i].Answer,
			exchanges[i].AskedAt.Format(time.RFC3339),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// WriteDrillXLSX writes a drill attempt report as an XLSX workbook with a
// score summary below the attempt rows.
func WriteDrillXLSX(w io.Writer, attempts []domain.DrillAttempt, score domain.DrillScore) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, toAny(drillColumns)); err != nil {
		return err
	}
	for i := range attempts {
		at := &attempts[i]
		result := "Incorrect"
		if at.Correct {
			result = "Correct"
		}
		row := []any{
			i + 1,
			at.Question,
			string(at.UserRuling),
			string(at.CorrectRuling),
			result,
			at.Reason,
			at.Explanation,
			at.AnsweredAt.Format(time.RFC3339),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	summaryRow := len(attempts) + 3
	summary := []any{
		"Score",
		fmt.Sprintf("%d/%d", score.Correct, score.Total),
		strconv.FormatFloat(score.Accuracy, 'f', 1, 64) + "%",
	}
	if err := writeRow(f, summaryRow, summary); err != nil {
		return err
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func toAny(src []string) []any {
	out := make([]any, len(src))
	for i, s := range src {
		out[i] = s
	}
	return out
}
