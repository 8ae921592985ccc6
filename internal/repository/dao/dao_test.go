package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to Docker: %v", err)
	}

	resource, err := pool.Run("postgres", "15-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=tropa_test",
	})
	if err != nil {
		log.Fatalf("could not start resource: %v", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%v user=test password=test dbname=tropa_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)
	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %v", err)
	}

	os.Exit(code)
}

func seedScoringFixtures(t *testing.T) (Program, []Unit) {
	t.Helper()
	ctx := context.Background()

	units := []Unit{
		{Name: "Halcones", Color: "rojo", Branch: "tropa"},
		{Name: "Lobos", Color: "gris", Branch: "tropa"},
	}
	require.NoError(t, testDB.WithContext(ctx).Create(&units).Error)
	t.Cleanup(func() {
		testDB.Where("1 = 1").Delete(&Unit{})
	})

	programDAO := NewProgramDAO(testDB)
	program, err := programDAO.Insert(ctx, Program{
		StartDate:  time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		Theme:      "Semana de pionerismo",
		Branch:     "tropa",
		Status:     "planned",
		LeaderName: "Ana",
		Objectives: []string{"nudos", "trabajo en equipo"},
		Activities: []Activity{
			{Name: "Nudos", StartTime: "09:30", DurationMin: 45},
			{Name: "Torre de pionerismo", StartTime: "10:30", DurationMin: 90},
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = NewProgramDAO(testDB).Delete(context.Background(), program.ID)
	})

	return program, units
}

func TestProgramDAO_RoundTrip(t *testing.T) {
	ctx := context.Background()
	program, _ := seedScoringFixtures(t)

	t.Run("activities come back in position order", func(t *testing.T) {
		found, err := NewProgramDAO(testDB).FindByID(ctx, program.ID)
		require.NoError(t, err)
		require.Len(t, found.Activities, 2)
		assert.Equal(t, 1, found.Activities[0].Position)
		assert.Equal(t, "Nudos", found.Activities[0].Name)
		assert.Equal(t, []string{"nudos", "trabajo en equipo"}, found.Objectives)
	})

	t.Run("update replaces the activity list", func(t *testing.T) {
		program.Theme = "Semana de cocina"
		program.Activities = []Activity{
			{Name: "Fogata", StartTime: "19:00", DurationMin: 60},
		}

		updated, err := NewProgramDAO(testDB).Update(ctx, program)
		require.NoError(t, err)
		assert.Equal(t, "Semana de cocina", updated.Theme)
		require.Len(t, updated.Activities, 1)
		assert.Equal(t, 1, updated.Activities[0].Position)
	})

	t.Run("unknown program", func(t *testing.T) {
		_, err := NewProgramDAO(testDB).FindByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrProgramNotFound)
	})
}

func TestProgramDAO_DeleteRemovesScoresAndAttendance(t *testing.T) {
	ctx := context.Background()
	program, units := seedScoringFixtures(t)

	member := Member{Name: "Ana", Branch: "tropa"}
	require.NoError(t, testDB.WithContext(ctx).Create(&member).Error)
	t.Cleanup(func() {
		testDB.Where("1 = 1").Delete(&AttendanceRecord{})
		testDB.Where("1 = 1").Delete(&Member{})
	})

	activity := program.Activities[0]
	_, err := NewScoreDAO(testDB).ReplaceForActivity(ctx, activity.ID, []ScoreEntry{
		{ActivityID: activity.ID, UnitID: units[0].ID, Score: 60},
	})
	require.NoError(t, err)

	_, err = NewAttendanceDAO(testDB).BulkUpsert(ctx, []AttendanceRecord{
		{MemberID: member.ID, ProgramID: program.ID, Status: "presente", Date: program.StartDate},
	})
	require.NoError(t, err)

	require.NoError(t, NewProgramDAO(testDB).Delete(ctx, program.ID))

	var scoreCount int64
	require.NoError(t, testDB.Model(&ScoreEntry{}).Where("activity_id = ?", activity.ID).Count(&scoreCount).Error)
	assert.Zero(t, scoreCount)

	var attendanceCount int64
	require.NoError(t, testDB.Model(&AttendanceRecord{}).Where("program_id = ?", program.ID).Count(&attendanceCount).Error)
	assert.Zero(t, attendanceCount)

	var activityCount int64
	require.NoError(t, testDB.Model(&Activity{}).Where("program_id = ?", program.ID).Count(&activityCount).Error)
	assert.Zero(t, activityCount)
}

func TestScoreDAO_ReplaceAndRanking(t *testing.T) {
	ctx := context.Background()
	program, units := seedScoringFixtures(t)
	scoreDAO := NewScoreDAO(testDB)

	first := program.Activities[0]
	second := program.Activities[1]

	count, err := scoreDAO.ReplaceForActivity(ctx, first.ID, []ScoreEntry{
		{ActivityID: first.ID, UnitID: units[0].ID, Score: 60},
		{ActivityID: first.ID, UnitID: units[1].ID, Score: 80},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = scoreDAO.ReplaceForActivity(ctx, second.ID, []ScoreEntry{
		{ActivityID: second.ID, UnitID: units[1].ID, Score: 50, Note: "solo Lobos"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("replace overwrites the previous set", func(t *testing.T) {
		count, err := scoreDAO.ReplaceForActivity(ctx, first.ID, []ScoreEntry{
			{ActivityID: first.ID, UnitID: units[0].ID, Score: 70},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		entries, err := scoreDAO.FindByActivityID(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 70, entries[0].Score)
	})

	t.Run("ranking aggregates per unit in total order", func(t *testing.T) {
		rows, err := scoreDAO.RankingForProgram(ctx, program.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Halcones", rows[0].UnitName)
		assert.Equal(t, 70, rows[0].Total)
		assert.Equal(t, 1, rows[0].ActivitiesCount)
		assert.Equal(t, "Lobos", rows[1].UnitName)
		assert.Equal(t, 50, rows[1].Total)
	})
}

func TestAttendanceDAO_BulkUpsert(t *testing.T) {
	ctx := context.Background()
	program, _ := seedScoringFixtures(t)
	attendanceDAO := NewAttendanceDAO(testDB)

	members := []Member{
		{Name: "Ana", Branch: "tropa"},
		{Name: "Bruno", Branch: "tropa"},
	}
	require.NoError(t, testDB.WithContext(ctx).Create(&members).Error)
	t.Cleanup(func() {
		testDB.Where("1 = 1").Delete(&AttendanceRecord{})
		testDB.Where("1 = 1").Delete(&Member{})
	})

	date := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	count, err := attendanceDAO.BulkUpsert(ctx, []AttendanceRecord{
		{MemberID: members[0].ID, ProgramID: program.ID, Status: "presente", Date: date},
		{MemberID: members[1].ID, ProgramID: program.ID, Status: "ausente", Date: date},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	t.Run("upsert keeps one row per member and program", func(t *testing.T) {
		count, err := attendanceDAO.BulkUpsert(ctx, []AttendanceRecord{
			{MemberID: members[1].ID, ProgramID: program.ID, Status: "tardanza", Date: date},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		records, err := attendanceDAO.FindByProgramID(ctx, program.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)

		byMember := make(map[uint]string, len(records))
		for _, r := range records {
			byMember[r.MemberID] = r.Status
		}
		assert.Equal(t, "presente", byMember[members[0].ID])
		assert.Equal(t, "tardanza", byMember[members[1].ID])
	})
}
