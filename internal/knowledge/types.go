// Package knowledge is the assistant's static catalog of explanatory
// entries plus a small related-concept graph. The catalog is loaded once at
// process start and never mutated; all queries are pure lookups.
package knowledge

// Difficulty tiers an entry by how much background it assumes.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Entry is one explanatory article in the catalog.
type Entry struct {
	Topic      string
	Keywords   []string
	Content    string
	Category   string
	Difficulty Difficulty
}
