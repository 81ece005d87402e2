package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosection/internal/events"
)

func TestStore_SeededWithBuiltins(t *testing.T) {
	store := NewStore(nil, nil)

	records := store.List()
	assert.Len(t, records, len(Builtins))

	rec, err := store.GetByName("steel S355")
	require.NoError(t, err)
	assert.InDelta(t, 7850, rec.Density, 1e-9)
	assert.InDelta(t, 355, rec.YieldStrength, 1e-9)
}

func TestStore_CreateGetDelete(t *testing.T) {
	bus := events.NewBus()
	var published []string
	bus.Subscribe(TopicCreated, func(payload interface{}) {
		published = append(published, payload.(Record).Name())
	})

	store := NewStore(bus, nil)

	rec, err := store.Create(Material{
		Type: "steel", Grade: "S460", Density: 7850,
		YieldStrength: 460, TensileStrength: 540, ElasticModulus: 210000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, []string{"steel S460"}, published)

	got, err := store.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	require.NoError(t, store.Delete(rec.ID))
	_, err = store.Get(rec.ID)
	assert.Error(t, err)
	_, err = store.GetByName("steel S460")
	assert.Error(t, err)
}

func TestStore_CreateRejectsInvalidAndDuplicate(t *testing.T) {
	store := NewStore(nil, nil)

	_, err := store.Create(Material{Type: "steel", Grade: "bad", Density: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")

	_, err = store.Create(Material{Type: "steel", Grade: "S235", Density: 7850})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStore_Update(t *testing.T) {
	store := NewStore(nil, nil)

	rec, err := store.GetByName("aluminum 6061-T6")
	require.NoError(t, err)

	updated := rec.Material
	updated.Density = 2710
	got, err := store.Update(rec.ID, updated)
	require.NoError(t, err)
	assert.InDelta(t, 2710, got.Density, 1e-9)

	_, err = store.Update("no-such-id", updated)
	assert.Error(t, err)
}

func TestMaterial_Validate(t *testing.T) {
	valid := Material{Type: "steel", Grade: "S235", Density: 7850}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Material{Grade: "S235", Density: 7850}.Validate())
	assert.Error(t, Material{Type: "steel", Density: -1}.Validate())
	assert.Error(t, Material{Type: "steel", Density: 7850, YieldStrength: -5}.Validate())
}
