package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Summary"
	OutcomesSheet = "Outcomes"
)

type exportService struct {
	results ResultService
	bank    *quiz.Bank
	logger  *slog.Logger
}

func NewExportService(results ResultService, bank *quiz.Bank, logger *slog.Logger) ExportService {
	return &exportService{
		results: results,
		bank:    bank,
		logger:  logger,
	}
}

// ExportResult renders a result as an xlsx workbook and returns it with a
// suggested file name.
func (s *exportService) ExportResult(ctx context.Context, resultID uint) ([]byte, string, error) {
	result, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, "", fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	if _, err := f.NewSheet(OutcomesSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create Excel style: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Concept", "Questions", "Correct", "Score (%)", "Mastery Level"},
	}
	for _, c := range result.Concepts {
		summaryRows = append(summaryRows, []interface{}{
			c.DisplayName, c.TotalQuestions, c.CorrectQuestions, c.ScorePercent, string(c.MasteryLevel),
		})
	}
	summaryRows = append(summaryRows,
		[]interface{}{},
		[]interface{}{"Overall", result.TotalQuestions, result.TotalCorrect, result.OverallScore, string(mastery.Classify(result.OverallScore))},
		[]interface{}{"Submitted At", result.SubmittedAt.Format("2006-01-02 15:04:05")},
		[]interface{}{"Auto Submitted", result.AutoSubmitted},
	)
	if err := writeRows(f, SummarySheet, summaryRows); err != nil {
		return nil, "", err
	}

	outcomeRows := [][]interface{}{
		{"Question", "Concept", "Prompt", "Correct"},
	}
	for _, o := range result.Outcomes {
		prompt := ""
		if q, ok := s.bank.Get(o.QuestionID); ok {
			prompt = q.Text
		}
		concept := string(o.ConceptID)
		if info, err := mastery.Lookup(o.ConceptID); err == nil {
			concept = info.Name
		}
		correct := "No"
		if o.Correct {
			correct = "Yes"
		}
		outcomeRows = append(outcomeRows, []interface{}{o.QuestionID, concept, prompt, correct})
	}
	if err := writeRows(f, OutcomesSheet, outcomeRows); err != nil {
		return nil, "", err
	}

	for _, sheet := range []string{SummarySheet, OutcomesSheet} {
		if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
			return nil, "", fmt.Errorf("failed to style header: %w", err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Result exported", "result_id", resultID, "bytes", buf.Len())
	return buf.Bytes(), fmt.Sprintf("kumi-result-%d.xlsx", resultID), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
