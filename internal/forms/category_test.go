package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

func TestConfigRanges(t *testing.T) {
	youth := Config(models.CategoryYouth)
	assert.Equal(t, 12, youth.AgeMin)
	assert.Equal(t, 18, youth.AgeMax)
	assert.False(t, youth.Unbounded)

	future := Config(models.CategoryFuture)
	assert.Equal(t, 18, future.AgeMin)
	assert.Equal(t, 25, future.AgeMax)

	world := Config(models.CategoryWorld)
	assert.Equal(t, 18, world.AgeMin)
	assert.True(t, world.Unbounded)
}

func TestCheckAgeEligibility(t *testing.T) {
	tests := []struct {
		name      string
		cat       models.Category
		age       int
		eligible  bool
		suggested *models.Category
	}{
		{"unknown age passes", models.CategoryYouth, 0, true, nil},
		{"youth in range", models.CategoryYouth, 16, true, nil},
		{"youth at cap", models.CategoryYouth, 18, true, nil},
		{"youth 19 suggests future", models.CategoryYouth, 19, false, catPtr(models.CategoryFuture)},
		{"youth 25 suggests future", models.CategoryYouth, 25, false, catPtr(models.CategoryFuture)},
		{"youth 26 suggests world", models.CategoryYouth, 26, false, catPtr(models.CategoryWorld)},
		{"future in range", models.CategoryFuture, 22, true, nil},
		{"future 30 suggests world", models.CategoryFuture, 30, false, catPtr(models.CategoryWorld)},
		// The eligibility gate only enforces the upper bound.
		{"youth below min passes gate", models.CategoryYouth, 10, true, nil},
		{"world 17 passes gate", models.CategoryWorld, 17, true, nil},
		{"world has no cap", models.CategoryWorld, 70, true, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckAgeEligibility(tc.cat, tc.age)
			assert.Equal(t, tc.eligible, got.Eligible)
			if tc.suggested == nil {
				assert.Nil(t, got.Suggested)
			} else {
				require.NotNil(t, got.Suggested)
				assert.Equal(t, *tc.suggested, *got.Suggested)
			}
		})
	}
}

func TestValidAge(t *testing.T) {
	assert.False(t, ValidAge(11, models.CategoryYouth))
	assert.True(t, ValidAge(12, models.CategoryYouth))
	assert.True(t, ValidAge(18, models.CategoryYouth))
	assert.False(t, ValidAge(19, models.CategoryYouth))

	assert.False(t, ValidAge(17, models.CategoryFuture))
	assert.True(t, ValidAge(25, models.CategoryFuture))
	assert.False(t, ValidAge(26, models.CategoryFuture))

	// World enforces the minimum but never the displayed max.
	assert.False(t, ValidAge(17, models.CategoryWorld))
	assert.True(t, ValidAge(18, models.CategoryWorld))
	assert.True(t, ValidAge(100, models.CategoryWorld))
}

func catPtr(c models.Category) *models.Category { return &c }
