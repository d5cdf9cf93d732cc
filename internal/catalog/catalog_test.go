package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

func TestInstrumentShapes(t *testing.T) {
	tests := []struct {
		kind         model.InstrumentKind
		items        int
		scaleMax     int
		screenerSize int
		maxScore     int
	}{
		{model.InstrumentDepression, 9, 3, 2, 27},
		{model.InstrumentAnxiety, 7, 3, 2, 21},
		{model.InstrumentWellBeing, 5, 5, 0, 25},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ins := Get(tt.kind)
			assert.Equal(t, tt.kind, ins.Kind)
			assert.Equal(t, tt.items, ins.ItemCount())
			assert.Equal(t, 0, ins.Scale.Min)
			assert.Equal(t, tt.scaleMax, ins.Scale.Max)
			assert.Equal(t, tt.screenerSize, ins.ScreenerSize)
			assert.Equal(t, tt.maxScore, ins.MaxScore())
			assert.Len(t, ins.Scale.Options, tt.scaleMax+1)
		})
	}
}

func TestScreenerAndRemainderSplit(t *testing.T) {
	t.Run("depression", func(t *testing.T) {
		screener := ScreenerOf(model.InstrumentDepression)
		remainder := RemainderOf(model.InstrumentDepression)
		require.Len(t, screener, 2)
		require.Len(t, remainder, 7)
		assert.Equal(t, "phq1", screener[0].ID)
		assert.Equal(t, "phq2", screener[1].ID)
		assert.Equal(t, "phq3", remainder[0].ID)
		for _, item := range screener {
			assert.True(t, item.Screener)
		}
		for _, item := range remainder {
			assert.False(t, item.Screener)
		}
	})

	t.Run("anxiety", func(t *testing.T) {
		require.Len(t, ScreenerOf(model.InstrumentAnxiety), 2)
		require.Len(t, RemainderOf(model.InstrumentAnxiety), 5)
	})

	t.Run("well-being has no split", func(t *testing.T) {
		assert.Nil(t, ScreenerOf(model.InstrumentWellBeing))
		assert.Nil(t, RemainderOf(model.InstrumentWellBeing))
	})
}

func TestCrisisItemTagging(t *testing.T) {
	dep := Get(model.InstrumentDepression)
	require.Equal(t, 8, dep.CrisisIndex)
	assert.True(t, dep.Items[8].Crisis)
	assert.Equal(t, "phq9", dep.Items[8].ID)

	for i, item := range dep.Items[:8] {
		assert.False(t, item.Crisis, "item %d must not be tagged crisis", i)
	}
	assert.Equal(t, -1, Get(model.InstrumentAnxiety).CrisisIndex)
	assert.Equal(t, -1, Get(model.InstrumentWellBeing).CrisisIndex)
}

// Bands must partition the instrument's score range contiguously, with no
// gaps and no overlaps, so every total resolves unambiguously.
func TestBandsAreContiguous(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			ins := Get(kind)
			require.NotEmpty(t, ins.Bands)
			assert.Equal(t, 0, ins.Bands[0].MinScore)
			for i := 1; i < len(ins.Bands); i++ {
				assert.Equal(t, ins.Bands[i-1].MaxScore+1, ins.Bands[i].MinScore,
					"band %d must start right after band %d ends", i, i-1)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	ins, ok := Lookup("phq-9")
	require.True(t, ok)
	assert.Equal(t, model.InstrumentDepression, ins.Kind)

	_, ok = Lookup("mmpi-2")
	assert.False(t, ok)
}

func TestPreferenceGroups(t *testing.T) {
	groups := PreferenceGroups()
	require.NotEmpty(t, groups)
	for _, g := range groups {
		assert.NotEmpty(t, g.Key)
		assert.NotEmpty(t, g.Options)
	}
}
