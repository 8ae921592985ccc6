package workflow

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUnknownMember  = errors.New("member is not part of the current roster")
	ErrSessionUnknown = errors.New("workflow session not found")
)

// Store holds live wizard sessions keyed by an opaque id, one state machine
// per session. All state is in memory: dropping a session loses its wizard
// position, which mirrors the no-draft-persistence policy of the wizards
// themselves.
type Store struct {
	mu         sync.RWMutex
	scoring    map[string]*Scoring
	attendance map[string]*Attendance

	programs ProgramSource
	units    UnitSource
	scores   ScoreSource
	ranking  RankingSource
	roster   RosterSource
}

func NewStore(programs ProgramSource, units UnitSource, scores ScoreSource, ranking RankingSource, roster RosterSource) *Store {
	return &Store{
		scoring:    make(map[string]*Scoring),
		attendance: make(map[string]*Attendance),
		programs:   programs,
		units:      units,
		scores:     scores,
		ranking:    ranking,
		roster:     roster,
	}
}

func (s *Store) CreateScoring() (string, *Scoring) {
	w := NewScoring(s.programs, s.units, s.scores, s.ranking)
	id := uuid.NewString()

	s.mu.Lock()
	s.scoring[id] = w
	s.mu.Unlock()

	return id, w
}

func (s *Store) GetScoring(id string) (*Scoring, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.scoring[id]
	if !ok {
		return nil, ErrSessionUnknown
	}

	return w, nil
}

func (s *Store) CreateAttendance() (string, *Attendance) {
	w := NewAttendance(s.programs, s.roster)
	id := uuid.NewString()

	s.mu.Lock()
	s.attendance[id] = w
	s.mu.Unlock()

	return id, w
}

func (s *Store) GetAttendance(id string) (*Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.attendance[id]
	if !ok {
		return nil, ErrSessionUnknown
	}

	return w, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.scoring, id)
	delete(s.attendance, id)
}
