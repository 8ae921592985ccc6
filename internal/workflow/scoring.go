package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/metrics"
)

var (
	ErrInvalidTransition    = errors.New("action not allowed in the current step")
	ErrUnknownUnit          = errors.New("unit is not part of the current row set")
	ErrActivityNotInProgram = errors.New("activity does not belong to the selected program")
)

// ProgramSource and friends are the slices of the backend each workflow needs.
// They are satisfied by the service layer; tests plug in fakes.
type ProgramSource interface {
	GetProgram(ctx context.Context, id uint) (domain.Program, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
}

type UnitSource interface {
	FindByBranch(ctx context.Context, branch domain.Branch) ([]domain.Unit, error)
}

type ScoreSource interface {
	GetScoresForActivity(ctx context.Context, activityID uint) ([]domain.ScoreEntry, error)
	SaveScores(ctx context.Context, activityID uint, entries []domain.ScoreEntry) (int, error)
}

type RankingSource interface {
	RankingForProgram(ctx context.Context, programID uint) ([]domain.RankingRow, error)
}

// ScoringState is the wizard position. Carrying the selected entities in the
// state itself keeps illegal combinations (step 3 without an activity)
// unrepresentable.
type ScoringState interface {
	scoringState()
}

type SelectingProgram struct{}

type SelectingActivity struct {
	Program domain.Program
}

type AssigningScores struct {
	Program  domain.Program
	Activity domain.Activity
	Rows     []ScoreRow
}

func (SelectingProgram) scoringState()  {}
func (SelectingActivity) scoringState() {}
func (AssigningScores) scoringState()   {}

// ScoreRow is one line of the scoring table: a unit with its in-memory score.
type ScoreRow struct {
	Unit  domain.Unit `json:"unit"`
	Score int         `json:"score"`
	Note  string      `json:"note"`
}

// Scoring drives the three step scoring wizard:
// SelectingProgram -> SelectingActivity -> AssigningScores.
// It is re-enterable and has no terminal state.
type Scoring struct {
	mu sync.Mutex

	programs ProgramSource
	units    UnitSource
	scores   ScoreSource
	ranking  RankingSource

	state       ScoringState
	rankingRows []domain.RankingRow
}

func NewScoring(programs ProgramSource, units UnitSource, scores ScoreSource, ranking RankingSource) *Scoring {
	return &Scoring{
		programs: programs,
		units:    units,
		scores:   scores,
		ranking:  ranking,
		state:    SelectingProgram{},
	}
}

func (w *Scoring) State() ScoringState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Ranking returns the last fetched standings for the selected program. Empty
// when no program is selected or the last fetch failed.
func (w *Scoring) Ranking() []domain.RankingRow {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.rankingRows
}

// SelectProgram moves to SelectingActivity, discarding any activity selection
// and in-progress score edits. The ranking refresh failure is swallowed: the
// standings render empty, the transition still succeeds.
func (w *Scoring) SelectProgram(ctx context.Context, programID uint) error {
	program, err := w.programs.GetProgram(ctx, programID)
	if err != nil {
		return fmt.Errorf("w.programs.GetProgram -> %w", err)
	}

	w.mu.Lock()
	w.state = SelectingActivity{Program: program}
	w.mu.Unlock()

	w.refreshRanking(ctx, program.ID)
	metrics.WorkflowTransitions.WithLabelValues("scoring", "selecting_activity").Inc()

	return nil
}

// SelectActivity moves to AssigningScores. The unit list and the previously
// saved scores are fetched concurrently and both must resolve before the row
// set is built; if either fetch fails the wizard stays on SelectingActivity.
// If the session stepped away while the fetches were in flight (a concurrent
// Back or a new program selection) the result is thrown away instead of
// resurrecting the discarded selection.
func (w *Scoring) SelectActivity(ctx context.Context, activityID uint) error {
	w.mu.Lock()
	current, ok := w.state.(SelectingActivity)
	w.mu.Unlock()
	if !ok {
		return ErrInvalidTransition
	}

	activity, err := w.programs.GetActivity(ctx, activityID)
	if err != nil {
		return fmt.Errorf("w.programs.GetActivity -> %w", err)
	}
	if activity.ProgramID != current.Program.ID {
		return ErrActivityNotInProgram
	}

	var (
		units []domain.Unit
		saved []domain.ScoreEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		units, err = w.units.FindByBranch(gctx, current.Program.Branch)
		return err
	})
	g.Go(func() error {
		var err error
		saved, err = w.scores.GetScoresForActivity(gctx, activity.ID)
		return err
	})
	if err = g.Wait(); err != nil {
		return fmt.Errorf("loading scoring table -> %w", err)
	}

	priors := make(map[uint]domain.ScoreEntry, len(saved))
	for _, e := range saved {
		priors[e.UnitID] = e
	}

	rows := make([]ScoreRow, 0, len(units))
	for _, u := range units {
		row := ScoreRow{Unit: u}
		if prior, ok := priors[u.ID]; ok {
			row.Score = prior.Score
			row.Note = prior.Note
		}
		rows = append(rows, row)
	}

	w.mu.Lock()
	latest, still := w.state.(SelectingActivity)
	if !still || latest.Program.ID != current.Program.ID {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	w.state = AssigningScores{
		Program:  current.Program,
		Activity: activity,
		Rows:     rows,
	}
	w.mu.Unlock()

	metrics.WorkflowTransitions.WithLabelValues("scoring", "assigning_scores").Inc()

	return nil
}

// SetScore edits the in-memory row set only.
func (w *Scoring) SetScore(unitID uint, score int, note string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, ok := w.state.(AssigningScores)
	if !ok {
		return ErrInvalidTransition
	}

	for i := range current.Rows {
		if current.Rows[i].Unit.ID == unitID {
			current.Rows[i].Score = score
			current.Rows[i].Note = note
			w.state = current
			return nil
		}
	}

	return ErrUnknownUnit
}

// SaveScores submits the full current row set. On success the ranking is
// refreshed and the wizard stays on AssigningScores with the rows intact, so
// the dirigente can see what was just saved. On failure the in-memory rows are
// left untouched.
func (w *Scoring) SaveScores(ctx context.Context) (int, error) {
	w.mu.Lock()
	current, ok := w.state.(AssigningScores)
	w.mu.Unlock()
	if !ok {
		return 0, ErrInvalidTransition
	}

	entries := make([]domain.ScoreEntry, 0, len(current.Rows))
	for _, row := range current.Rows {
		entries = append(entries, domain.ScoreEntry{
			ActivityID: current.Activity.ID,
			UnitID:     row.Unit.ID,
			Score:      row.Score,
			Note:       row.Note,
		})
	}

	count, err := w.scores.SaveScores(ctx, current.Activity.ID, entries)
	if err != nil {
		return 0, fmt.Errorf("w.scores.SaveScores -> %w", err)
	}

	w.refreshRanking(ctx, current.Program.ID)

	return count, nil
}

// Back returns to the immediately preceding step, discarding everything
// gathered at the step being left. There is no draft persistence.
func (w *Scoring) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch s := w.state.(type) {
	case AssigningScores:
		w.state = SelectingActivity{Program: s.Program}
	case SelectingActivity:
		w.state = SelectingProgram{}
		w.rankingRows = nil
	}
}

func (w *Scoring) refreshRanking(ctx context.Context, programID uint) {
	rows, err := w.ranking.RankingForProgram(ctx, programID)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		zap.L().Debug("ranking refresh failed", zap.Uint("program_id", programID), zap.Error(err))
		w.rankingRows = nil
		return
	}
	w.rankingRows = rows
}
