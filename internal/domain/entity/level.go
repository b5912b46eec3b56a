package entity

// LevelForRecipeCount maps an authored recipe count to a cooking level.
//
// Counts from 6 to 8 have no mapping: ok is false and the caller keeps the
// user's current level.
func LevelForRecipeCount(count int64) (level CookingLevel, ok bool) {
	switch {
	case count <= 2:
		return LevelBeginner, true
	case count <= 5:
		return LevelIntermediate, true
	case count > 8:
		return LevelAdvanced, true
	}
	return "", false
}
