package domain

// ScoreEntry is the score a unit earned in one activity. Uniqueness per
// (activity, unit) is enforced by the store.
type ScoreEntry struct {
	ActivityID uint   `json:"activity_id"`
	UnitID     uint   `json:"unit_id"`
	Score      int    `json:"score"`
	Note       string `json:"note"`
}

// RankingRow is a unit's aggregated standing within a program. Computed by the
// store, never recomputed client-side.
type RankingRow struct {
	Position        int    `json:"position"`
	UnitID          uint   `json:"unit_id"`
	UnitName        string `json:"unit_name"`
	Color           string `json:"color"`
	Total           int    `json:"total"`
	ActivitiesCount int    `json:"activities_count"`
}
