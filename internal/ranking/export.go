package ranking

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lsanchezo/cv-match/internal/matching"
)

// exportedResult is the JSON projection of one Result. Errors flatten to
// their message so the dump stays machine-readable.
type exportedResult struct {
	Rank   int                   `json:"rank"`
	Path   string                `json:"path"`
	Report *matching.MatchReport `json:"report,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func exportView(results []Result) []exportedResult {
	out := make([]exportedResult, 0, len(results))
	for i, r := range results {
		view := exportedResult{Rank: i + 1, Path: r.Path, Report: r.Report}
		if r.Err != nil {
			view.Error = r.Err.Error()
		}
		out = append(out, view)
	}
	return out
}

// DumpJSON writes the ranked results to path as indented JSON.
func DumpJSON(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportView(results)); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return nil
}

// ExportXLSX writes the ranked results to an Excel workbook with a summary
// sheet and a per-candidate ranking sheet.
func ExportXLSX(path, jobTitle string, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	summarySheet := "Summary"
	rankingSheet := "Ranked Candidates"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(rankingSheet); err != nil {
		return fmt.Errorf("create ranking sheet: %w", err)
	}

	if err := writeSummarySheet(f, summarySheet, jobTitle, results); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if err := writeRankingSheet(f, rankingSheet, results); err != nil {
		return fmt.Errorf("write ranking sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, sheet, jobTitle string, results []Result) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 50)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	scored := 0
	failed := 0
	var total, best float64
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		scored++
		total += r.Report.OverallScore
		if r.Report.OverallScore > best {
			best = r.Report.OverallScore
		}
	}

	f.SetCellValue(sheet, "A1", "Candidate Ranking Report")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.MergeCell(sheet, "A1", "B1")

	rows := []struct {
		label string
		value any
	}{
		{"Job Title:", jobTitle},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Documents Scored:", scored},
		{"Documents Failed:", failed},
	}
	if scored > 0 {
		rows = append(rows,
			struct {
				label string
				value any
			}{"Best Score:", fmt.Sprintf("%.1f", best)},
			struct {
				label string
				value any
			}{"Average Score:", fmt.Sprintf("%.1f", total/float64(scored))},
		)
	}

	for i, row := range rows {
		n := i + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), row.label)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", n), fmt.Sprintf("A%d", n), labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), row.value)
	}

	return nil
}

func writeRankingSheet(f *excelize.File, sheet string, results []Result) error {
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 25)
	f.SetColWidth(sheet, "D", "G", 14)
	f.SetColWidth(sheet, "H", "H", 40)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	headers := []string{"Rank", "File", "Candidate", "Overall", "Technologies", "Soft Skills", "Experience", "Error"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), filepath.Base(r.Path))

		if r.Err != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.Err.Error())
			continue
		}

		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Report.CandidateName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Report.OverallScore)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Report.TechnologyMatch.Score)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Report.SoftSkillsMatch.Score)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Report.ExperienceMatch.Score)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}
