package store_test

import (
	"context"
	"testing"

	"starwars-api/internal/testdb"
	"starwars-api/models"
	"starwars-api/store"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	return store.New(testdb.New(t))
}

func int64Ptr(v int64) *int64 { return &v }

func mustPlanet(t *testing.T, st *store.Store, name string) models.Planet {
	t.Helper()
	planet, err := st.CreatePlanet(context.Background(), models.Planet{Name: name, Climate: "arid", Terrain: "desert"})
	require.NoError(t, err)
	return planet
}

func mustUser(t *testing.T, st *store.Store, email string) models.User {
	t.Helper()
	user, err := st.CreateUser(context.Background(), models.User{Email: email, Password: "hash", IsActive: true})
	require.NoError(t, err)
	return user
}

func mustPerson(t *testing.T, st *store.Store, name string, planetID int64) models.Person {
	t.Helper()
	person, err := st.CreatePerson(context.Background(), models.Person{Name: name, PlanetID: &planetID})
	require.NoError(t, err)
	return person
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	first := mustUser(t, st, "luke@rebels.org")
	second := mustUser(t, st, "leia@rebels.org")
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	users, err := st.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "luke@rebels.org", users[0].Email)
	assert.Equal(t, "leia@rebels.org", users[1].Email)
	assert.True(t, users[0].IsActive)

	found, err := st.FindUserByEmail(ctx, "leia@rebels.org")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)

	_, err = st.FindUserByEmail(ctx, "LEIA@rebels.org")
	assert.True(t, errors.Is(err, errors.NotFound), "email lookup is case-sensitive")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := newStore(t)
	mustUser(t, st, "han@falcon.net")

	_, err := st.CreateUser(context.Background(), models.User{Email: "han@falcon.net", Password: "other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.AlreadyExists))
}

func TestCreateUserMissingFields(t *testing.T) {
	st := newStore(t)

	_, err := st.CreateUser(context.Background(), models.User{Email: "x@y.z"})
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestGetMissingRecords(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	_, err := st.GetUser(ctx, 42)
	assert.True(t, errors.Is(err, errors.NotFound))
	_, err = st.GetPlanet(ctx, 42)
	assert.True(t, errors.Is(err, errors.NotFound))
	_, err = st.GetPerson(ctx, 42)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestPlanetPopulationIsNullable(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	hoth, err := st.CreatePlanet(ctx, models.Planet{Name: "Hoth", Climate: "frozen"})
	require.NoError(t, err)
	tatooine, err := st.CreatePlanet(ctx, models.Planet{Name: "Tatooine", Population: int64Ptr(200000)})
	require.NoError(t, err)

	got, err := st.GetPlanet(ctx, hoth.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Population)

	got, err = st.GetPlanet(ctx, tatooine.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Population)
	assert.Equal(t, int64(200000), *got.Population)

	byName, err := st.FindPlanetByName(ctx, "Tatooine")
	require.NoError(t, err)
	assert.Equal(t, tatooine.ID, byName.ID)
}

func TestCreatePersonResolvesPlanet(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	tatooine := mustPlanet(t, st, "Tatooine")

	luke, err := st.CreatePerson(ctx, models.Person{
		Name:      "Luke Skywalker",
		Species:   "Human",
		BirthYear: "19BBY",
		Gender:    "male",
		PlanetID:  &tatooine.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, luke.PlanetName)
	assert.Equal(t, "Tatooine", *luke.PlanetName)

	got, err := st.GetPerson(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, luke, got)
}

func TestCreatePersonUnknownPlanet(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	_, err := st.CreatePerson(ctx, models.Person{Name: "Nobody", PlanetID: int64Ptr(99)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotFound))

	n, err := st.CountPeople(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFavoriteUniquePerUserAndTarget(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	user := mustUser(t, st, "luke@rebels.org")
	planet := mustPlanet(t, st, "Dagobah")

	_, err := st.CreateFavorite(ctx, models.Favorite{UserID: user.ID, PlanetID: &planet.ID})
	require.NoError(t, err)

	_, err = st.CreateFavorite(ctx, models.Favorite{UserID: user.ID, PlanetID: &planet.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.AlreadyExists), "unique constraint must reject the pair: %v", err)

	favs, err := st.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestFavoriteRequiresExactlyOneTarget(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	user := mustUser(t, st, "luke@rebels.org")
	planet := mustPlanet(t, st, "Dagobah")
	yoda := mustPerson(t, st, "Yoda", planet.ID)

	_, err := st.CreateFavorite(ctx, models.Favorite{UserID: user.ID})
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = st.CreateFavorite(ctx, models.Favorite{UserID: user.ID, PlanetID: &planet.ID, PeopleID: &yoda.ID})
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestFavoriteCheckConstraint(t *testing.T) {
	db := testdb.New(t)
	mustUser(t, store.New(db), "luke@rebels.org")

	// Bypass the store validation to hit the schema constraint directly.
	_, err := db.Exec("INSERT INTO favorites (user_id, people_id, planet_id) VALUES (1, NULL, NULL)")
	require.Error(t, err)
}

func TestFavoriteUnknownUser(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	planet := mustPlanet(t, st, "Dagobah")

	_, err := st.CreateFavorite(ctx, models.Favorite{UserID: 7, PlanetID: &planet.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotFound), "foreign key must reject unknown user: %v", err)
}

func TestListFavoriteTargets(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	luke := mustUser(t, st, "luke@rebels.org")
	leia := mustUser(t, st, "leia@rebels.org")
	tatooine := mustPlanet(t, st, "Tatooine")
	naboo := mustPlanet(t, st, "Naboo")
	r2 := mustPerson(t, st, "R2-D2", naboo.ID)

	_, err := st.CreateFavorite(ctx, models.Favorite{UserID: luke.ID, PlanetID: &tatooine.ID})
	require.NoError(t, err)
	_, err = st.CreateFavorite(ctx, models.Favorite{UserID: luke.ID, PeopleID: &r2.ID})
	require.NoError(t, err)
	_, err = st.CreateFavorite(ctx, models.Favorite{UserID: leia.ID, PlanetID: &naboo.ID})
	require.NoError(t, err)

	planets, err := st.ListFavoritePlanets(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.Equal(t, "Tatooine", planets[0].Name)

	people, err := st.ListFavoritePeople(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "R2-D2", people[0].Name)
	require.NotNil(t, people[0].PlanetName)
	assert.Equal(t, "Naboo", *people[0].PlanetName)

	people, err = st.ListFavoritePeople(ctx, leia.ID)
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	user := mustUser(t, st, "luke@rebels.org")
	planet := mustPlanet(t, st, "Tatooine")
	_, err := st.CreateFavorite(ctx, models.Favorite{UserID: user.ID, PlanetID: &planet.ID})
	require.NoError(t, err)

	require.NoError(t, st.DeleteUser(ctx, user.ID))

	favs, err := st.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	err = st.DeleteUser(ctx, user.ID)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	err := st.InTx(ctx, func(q *store.Queries) error {
		if _, err := q.CreatePlanet(ctx, models.Planet{Name: "Alderaan"}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	planets, err := st.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Empty(t, planets)
}
