package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityOverride_AddImageKeepsLastThree(t *testing.T) {
	var o ActivityOverride
	for _, img := range []string{"a", "b", "c", "d"} {
		o.AddImage(img)
	}
	assert.Equal(t, []string{"b", "c", "d"}, o.Images)
}

func TestActivityOverride_RemoveImage(t *testing.T) {
	o := ActivityOverride{Images: []string{"a", "b", "c"}}

	require.NoError(t, o.RemoveImage(1))
	assert.Equal(t, []string{"a", "c"}, o.Images)

	assert.ErrorIs(t, o.RemoveImage(2), ErrImageNotFound)
	assert.ErrorIs(t, o.RemoveImage(-1), ErrImageNotFound)
}

func TestActivityOverride_MergeEmptyFieldsKeepDefaults(t *testing.T) {
	a := Activity{ID: "d1-1", Title: "博多站", Time: "10:00", Description: "集合", OpeningHours: "24h"}
	o := ActivityOverride{Time: "10:30", Comment: "記得買車票"}

	v := o.Merge(a)
	assert.Equal(t, "博多站", v.Title)
	assert.Equal(t, "10:30", v.Time)
	assert.Equal(t, "24h", v.OpeningHours)
	assert.Equal(t, "集合", v.Description)
	assert.Equal(t, "記得買車票", v.Comment)
	assert.NotNil(t, v.Images)
}

func TestOptionalDay_Resolve(t *testing.T) {
	day := OptionalDay{
		DayPlan: DayPlan{ID: "day4", Activities: []Activity{{ID: "common"}}},
		OptionA: []Activity{{ID: "a1"}},
		OptionB: []Activity{{ID: "b1"}, {ID: "b2"}},
	}

	a := day.Resolve(DayOptionA)
	b := day.Resolve(DayOptionB)

	assert.Equal(t, "a1", a.Activities[0].ID)
	assert.Equal(t, "common", a.Activities[1].ID)
	assert.Len(t, b.Activities, 3)
	assert.Equal(t, "common", b.Activities[2].ID)
	assert.Len(t, day.Activities, 1)
}

func TestParseDayOption(t *testing.T) {
	assert.Equal(t, DayOptionB, ParseDayOption("B"))
	assert.Equal(t, DayOptionA, ParseDayOption("A"))
	assert.Equal(t, DayOptionA, ParseDayOption(""))
	assert.Equal(t, DayOptionA, ParseDayOption("c"))
}
