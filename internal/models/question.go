package models

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Question difficulty tiers.
const (
	TierEasy   = 1
	TierMedium = 2
	TierHard   = 3
)

type Question struct {
	ID            string   `bson:"id" json:"id"`
	Text          string   `bson:"text" json:"text"`
	Difficulty    int      `bson:"difficulty" json:"difficulty"`
	Options       []Option `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

// DifficultyName converts a difficulty tier or adaptive level to its display name.
func DifficultyName(level int) string {
	switch level {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return "Medium"
	}
}
