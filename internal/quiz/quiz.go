package quiz

import (
	"errors"
	"math"
)

var (
	ErrInvalidAnswer = errors.New("quiz: answer out of range")
	ErrNotFound      = errors.New("quiz: session not found")
)

// PointsPerAnswer is awarded for each correct answer.
const PointsPerAnswer = 5

// Meta describes the quiz on its start card.
type Meta struct {
	Questions  int `json:"questions"`
	Minutes    int `json:"minutes"`
	MaxPoints  int `json:"maxPoints"`
	PassingPct int `json:"passingPct"`
}

func QuizMeta() Meta {
	return Meta{Questions: len(Questions()), Minutes: 15, MaxPoints: 100, PassingPct: 70}
}

// UserStats is the player's standing shown above the quiz.
type UserStats struct {
	GlobalRank    int    `json:"globalRank"`
	SeasonPoints  int    `json:"seasonPoints"`
	Category      string `json:"category"`
	CurrentStreak int    `json:"currentStreak"`
	TotalQuizzes  int    `json:"totalQuizzes"`
}

func CurrentUserStats() UserStats {
	return UserStats{
		GlobalRank:    272,
		SeasonPoints:  1847,
		Category:      "Intermediate",
		CurrentStreak: 7,
		TotalQuizzes:  23,
	}
}

// Score counts the answers that match the correct option. answers maps a
// question index to the chosen option index; unknown question indexes are ignored.
func Score(answers map[int]int) int {
	questions := Questions()
	correct := 0
	for q, a := range answers {
		if q < 0 || q >= len(questions) {
			continue
		}
		if questions[q].CorrectAnswer == a {
			correct++
		}
	}
	return correct
}

// Result is the completion summary.
type Result struct {
	Score         int `json:"score"`
	Total         int `json:"total"`
	Percentage    int `json:"percentage"`
	PointsEarned  int `json:"pointsEarned"`
	NewRank       int `json:"newRank"`
	CurrentStreak int `json:"currentStreak"`
}

// Evaluate scores answers and projects the player's new standing.
func Evaluate(answers map[int]int) Result {
	stats := CurrentUserStats()
	total := len(Questions())
	score := Score(answers)
	pct := int(math.Round(float64(score) / float64(total) * 100))

	r := Result{
		Score:         score,
		Total:         total,
		Percentage:    pct,
		PointsEarned:  score * PointsPerAnswer,
		NewRank:       stats.GlobalRank,
		CurrentStreak: stats.CurrentStreak,
	}
	if score > 15 {
		r.NewRank -= 5
	}
	if pct >= QuizMeta().PassingPct {
		r.CurrentStreak++
	}
	return r
}
