package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForRecipeCount(t *testing.T) {
	tests := []struct {
		count  int64
		want   CookingLevel
		wantOK bool
	}{
		{0, LevelBeginner, true},
		{1, LevelBeginner, true},
		{2, LevelBeginner, true},
		{3, LevelIntermediate, true},
		{5, LevelIntermediate, true},
		{6, "", false},
		{7, "", false},
		{8, "", false},
		{9, LevelAdvanced, true},
		{42, LevelAdvanced, true},
	}
	for _, tt := range tests {
		got, ok := LevelForRecipeCount(tt.count)
		assert.Equal(t, tt.wantOK, ok, "count=%d", tt.count)
		assert.Equal(t, tt.want, got, "count=%d", tt.count)
	}
}

func TestCookingLevelValid(t *testing.T) {
	assert.True(t, LevelBeginner.Valid())
	assert.True(t, LevelAdvanced.Valid())
	assert.False(t, CookingLevel("principiante").Valid())
	assert.False(t, CookingLevel("").Valid())
}
