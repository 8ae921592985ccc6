// Package export renders program data into xlsx workbooks for the group's
// paper records.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gruposcout/tropa-api/internal/domain"
)

const (
	sheetRanking    = "Ranking"
	sheetAsistencia = "Asistencia"

	dateLayout = "02/01/2006"
)

// RankingWorkbook builds a two sheet workbook: the unit standings of the
// program and the attendance roster for the same week. The caller owns the
// returned file and must Close it.
func RankingWorkbook(program domain.Program, ranking []domain.RankingRow, roster []domain.AttendanceRecord, members []domain.Member) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeRankingSheet(f, program, ranking); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeAttendanceSheet(f, roster, members); err != nil {
		f.Close()
		return nil, err
	}

	// NewFile seeds a default "Sheet1".
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("f.DeleteSheet -> %w", err)
	}

	return f, nil
}

func writeRankingSheet(f *excelize.File, program domain.Program, ranking []domain.RankingRow) error {
	if _, err := f.NewSheet(sheetRanking); err != nil {
		return fmt.Errorf("f.NewSheet -> %w", err)
	}

	header := [][]any{
		{fmt.Sprintf("Programa: %v", program.Theme)},
		{fmt.Sprintf("Rama: %v", program.Branch)},
		{fmt.Sprintf("Semana: %v a %v", program.StartDate.Format(dateLayout), program.EndDate.Format(dateLayout))},
		{},
		{"Puesto", "Unidad", "Color", "Puntos", "Actividades"},
	}
	for i, row := range header {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		if err := f.SetSheetRow(sheetRanking, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	for i, row := range ranking {
		cell, err := excelize.CoordinatesToCellName(1, len(header)+i+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		values := []any{row.Position, row.UnitName, row.Color, row.Total, row.ActivitiesCount}
		if err := f.SetSheetRow(sheetRanking, cell, &values); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	return nil
}

func writeAttendanceSheet(f *excelize.File, roster []domain.AttendanceRecord, members []domain.Member) error {
	if _, err := f.NewSheet(sheetAsistencia); err != nil {
		return fmt.Errorf("f.NewSheet -> %w", err)
	}

	names := make(map[uint]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	headerRow := []any{"Miembro", "Estado", "Fecha"}
	if err := f.SetSheetRow(sheetAsistencia, "A1", &headerRow); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	for i, rec := range roster {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		values := []any{names[rec.MemberID], string(rec.Status), rec.Date.Format(dateLayout)}
		if err := f.SetSheetRow(sheetAsistencia, cell, &values); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	return nil
}
