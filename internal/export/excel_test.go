package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
)

func TestRankingWorkbook(t *testing.T) {
	program := domain.Program{
		ID:        1,
		Theme:     "Semana de pionerismo",
		Branch:    domain.BranchTropa,
		StartDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	ranking := []domain.RankingRow{
		{Position: 1, UnitID: 2, UnitName: "Lobos", Color: "gris", Total: 80, ActivitiesCount: 3},
		{Position: 2, UnitID: 1, UnitName: "Halcones", Color: "rojo", Total: 65, ActivitiesCount: 2},
	}
	members := []domain.Member{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
	}
	roster := []domain.AttendanceRecord{
		{MemberID: 1, ProgramID: 1, Status: domain.AttendancePresente, Date: program.StartDate},
		{MemberID: 2, ProgramID: 1, Status: domain.AttendanceAusente, Date: program.StartDate},
	}

	f, err := RankingWorkbook(program, ranking, roster, members)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetRanking)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 7)
	assert.Equal(t, "Programa: Semana de pionerismo", rows[0][0])
	assert.Equal(t, []string{"Puesto", "Unidad", "Color", "Puntos", "Actividades"}, rows[4])
	assert.Equal(t, []string{"1", "Lobos", "gris", "80", "3"}, rows[5])
	assert.Equal(t, []string{"2", "Halcones", "rojo", "65", "2"}, rows[6])

	attendance, err := f.GetRows(sheetAsistencia)
	require.NoError(t, err)
	require.Len(t, attendance, 3)
	assert.Equal(t, []string{"Miembro", "Estado", "Fecha"}, attendance[0])
	assert.Equal(t, []string{"Ana", "presente", "08/03/2025"}, attendance[1])
	assert.Equal(t, []string{"Bruno", "ausente", "08/03/2025"}, attendance[2])

	// The default sheet is dropped.
	idx, err := f.GetSheetIndex("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}
