package domain

// Difficulty is the target level of a learning roadmap.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulties is the set of accepted difficulty levels.
var ValidDifficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// NormalizeDifficulty maps free-form model output onto the closed
// difficulty set, defaulting to Beginner.
func NormalizeDifficulty(raw string) Difficulty {
	d := Difficulty(raw)
	if ValidDifficulties[d] {
		return d
	}
	return DifficultyBeginner
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
