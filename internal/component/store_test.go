package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosection/internal/events"
	"github.com/alexiusacademia/gosection/internal/profile"
)

func validTube() profile.Dimensions {
	return profile.Dimensions{profile.DimDiameter: 100, profile.DimThickness: 5}
}

func TestStore_CreateComputesProperties(t *testing.T) {
	bus := events.NewBus()
	created := 0
	bus.Subscribe(TopicCreated, func(payload interface{}) { created++ })

	store := NewStore(bus, nil)

	c, err := store.Create("main chord", profile.RoundTube, validTube(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	require.NotNil(t, c.Properties)
	assert.InDelta(t, 1492.2565, c.Properties.Area, 1e-4)
	assert.Equal(t, 1, created)
}

func TestStore_CreateRefusesInvalidDimensions(t *testing.T) {
	store := NewStore(nil, nil)

	// Wall too thick for the diameter: the store must refuse so no
	// unvalidated dimension set ever reaches the calculator.
	_, err := store.Create("bad", profile.RoundTube,
		profile.Dimensions{profile.DimDiameter: 100, profile.DimThickness: 60}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dimensions")

	_, err = store.Create("", profile.RoundTube, validTube(), "")
	assert.Error(t, err)

	_, err = store.Create("unknown", profile.Type("hexagon"), validTube(), "")
	assert.Error(t, err)
}

func TestStore_UpdateRevalidatesAndRecomputes(t *testing.T) {
	store := NewStore(nil, nil)

	c, err := store.Create("chord", profile.RoundTube, validTube(), "")
	require.NoError(t, err)

	updated, err := store.Update(c.ID, profile.Dimensions{
		profile.DimDiameter: 120, profile.DimThickness: 6,
	})
	require.NoError(t, err)
	assert.Greater(t, updated.Properties.Area, c.Properties.Area)

	_, err = store.Update(c.ID, profile.Dimensions{
		profile.DimDiameter: 120, profile.DimThickness: 80,
	})
	assert.Error(t, err)

	_, err = store.Update("no-such-id", validTube())
	assert.Error(t, err)
}

func TestStore_DimensionsAreCopied(t *testing.T) {
	store := NewStore(nil, nil)

	dims := validTube()
	c, err := store.Create("chord", profile.RoundTube, dims, "")
	require.NoError(t, err)

	// Mutating the caller's map must not reach the stored component.
	dims[profile.DimDiameter] = 1

	got, err := store.Get(c.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100, got.Dimensions[profile.DimDiameter], 1e-9)
}

func TestStore_ListSortedAndDelete(t *testing.T) {
	store := NewStore(nil, nil)

	_, err := store.Create("zeta", profile.RoundTube, validTube(), "")
	require.NoError(t, err)
	a, err := store.Create("alpha", profile.RoundTube, validTube(), "")
	require.NoError(t, err)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)

	require.NoError(t, store.Delete(a.ID))
	assert.Error(t, store.Delete(a.ID))
	assert.Len(t, store.List(), 1)
}
