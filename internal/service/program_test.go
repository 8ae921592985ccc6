package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
)

func TestProgramService_CreateProgram(t *testing.T) {
	repo := &stubProgramRepo{programs: map[uint]domain.Program{}}
	svc := NewProgramService(repo)

	t.Run("defaults the status to planned", func(t *testing.T) {
		created, err := svc.CreateProgram(context.Background(), domain.Program{
			Theme:  "Campamento de invierno",
			Branch: domain.BranchTropa,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ProgramPlanned, created.Status)
	})

	t.Run("rejects an unknown branch", func(t *testing.T) {
		_, err := svc.CreateProgram(context.Background(), domain.Program{
			Theme:  "Campamento",
			Branch: "castores",
		})

		assert.ErrorIs(t, err, ErrInvalidBranch)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.CreateProgram(context.Background(), domain.Program{
			Theme:  "Campamento",
			Branch: domain.BranchTropa,
			Status: "paused",
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestProgramService_GetProgram(t *testing.T) {
	repo := &stubProgramRepo{
		programs: map[uint]domain.Program{
			1: {ID: 1, Theme: "Semana de pionerismo", Branch: domain.BranchTropa},
		},
	}
	svc := NewProgramService(repo)

	program, err := svc.GetProgram(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Semana de pionerismo", program.Theme)

	_, err = svc.GetProgram(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestProgramService_ListPrograms(t *testing.T) {
	repo := &stubProgramRepo{
		programs: map[uint]domain.Program{
			1: {ID: 1, Branch: domain.BranchTropa},
		},
	}
	svc := NewProgramService(repo)

	programs, err := svc.ListPrograms(context.Background(), domain.ProgramFilter{Branch: domain.BranchTropa})
	require.NoError(t, err)
	assert.Len(t, programs, 1)

	_, err = svc.ListPrograms(context.Background(), domain.ProgramFilter{Branch: "castores"})
	assert.ErrorIs(t, err, ErrInvalidBranch)
}
