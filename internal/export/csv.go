package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// transcriptColumns defines the CSV header for simulator transcripts.
var transcriptColumns = []string{
	"#",
	"Question",
	"Answer",
	"Asked At",
}

// drillColumns defines the CSV header for drill attempt reports.
var drillColumns = []string{
	"#",
	"Question",
	"Your Ruling",
	"Correct Ruling",
	"Result",
	"Reason",
	"Explanation",
	"Answered At",
}

// Writer wraps csv.Writer for exporting session records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteTranscript writes the transcript header and one row per exchange.
func (w *Writer) WriteTranscript(exchanges []domain.Exchange) error {
	if err := w.csv.Write(transcriptColumns); err != nil {
		return err
	}
	for i := range exchanges {
		if err := w.csv.Write(exchangeToRow(i, &exchanges[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteDrillReport writes the drill header and one row per attempt.
func (w *Writer) WriteDrillReport(attempts []domain.DrillAttempt) error {
	if err := w.csv.Write(drillColumns); err != nil {
		return err
	}
	for i := range attempts {
		if err := w.csv.Write(attemptToRow(i, &attempts[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func exchangeToRow(i int, ex *domain.Exchange) []string {
	return []string{
		strconv.Itoa(i + 1),
		ex.Question,
		ex.Answer,
		ex.AskedAt.Format(time.RFC3339),
	}
}

func attemptToRow(i int, at *domain.DrillAttempt) []string {
	result := "Incorrect"
	if at.Correct {
		result = "Correct"
	}
	return []string{
		strconv.Itoa(i + 1),
		at.Question,
		string(at.UserRuling),
		string(at.CorrectRuling),
		result,
		at.Reason,
		at.Explanation,
		at.AnsweredAt.Format(time.RFC3339),
	}
}
