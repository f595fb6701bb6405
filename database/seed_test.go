package database_test

import (
	"context"
	"testing"

	"starwars-api/database"
	"starwars-api/internal/testdb"
	"starwars-api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultCatalogue(t *testing.T) {
	ctx := context.Background()
	st := store.New(testdb.New(t))

	result, err := database.Seed(ctx, st, database.DefaultSeed())
	require.NoError(t, err)
	assert.Equal(t, 7, result.Planets)
	assert.Equal(t, 10, result.People)

	tatooine, err := st.FindPlanetByName(ctx, "Tatooine")
	require.NoError(t, err)
	require.NotNil(t, tatooine.Population)
	assert.Equal(t, int64(200000), *tatooine.Population)

	hoth, err := st.FindPlanetByName(ctx, "Hoth")
	require.NoError(t, err)
	assert.Nil(t, hoth.Population)

	people, err := st.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 10)
	assert.Equal(t, "Luke Skywalker", people[0].Name)
	require.NotNil(t, people[0].PlanetName)
	assert.Equal(t, "Tatooine", *people[0].PlanetName)
}

func TestSeedTwiceInsertsNothing(t *testing.T) {
	ctx := context.Background()
	st := store.New(testdb.New(t))

	_, err := database.Seed(ctx, st, database.DefaultSeed())
	require.NoError(t, err)

	result, err := database.Seed(ctx, st, database.DefaultSeed())
	require.NoError(t, err)
	assert.Zero(t, result.Planets)
	assert.Zero(t, result.People)

	planets, err := st.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 7)
}

func TestSeedCustomFile(t *testing.T) {
	ctx := context.Background()
	st := store.New(testdb.New(t))

	data := []byte(`
planets:
  - name: Bespin
    climate: temperate
    terrain: gas giant
    population: 6000000
    residents:
      - name: Lando Calrissian
        species: Human
        birth_year: 31BBY
        gender: male
`)
	result, err := database.Seed(ctx, st, data)
	require.NoError(t, err)
	assert.Equal(t, database.SeedResult{Planets: 1, People: 1}, result)

	person, err := st.GetPerson(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lando Calrissian", person.Name)
	assert.Equal(t, "31BBY", person.BirthYear)
}

func TestSeedRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := store.New(testdb.New(t))

	data := []byte(`
planets:
  - name: Bespin
    residents:
      - name: ""
`)
	_, err := database.Seed(ctx, st, data)
	require.Error(t, err)

	planets, err := st.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestSeedInvalidYAML(t *testing.T) {
	st := store.New(testdb.New(t))

	_, err := database.Seed(context.Background(), st, []byte("planets: [name: {"))
	assert.Error(t, err)
}
