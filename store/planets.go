package store

import (
	"context"
	"database/sql"

	"starwars-api/models"

	"github.com/juju/errors"
)

const planetColumns = "id, name, climate, terrain, population"

// ListPlanets returns all planets in primary key order
func (q *Queries) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	if err := q.selectAll(ctx, &planets, "SELECT "+planetColumns+" FROM planets ORDER BY id"); err != nil {
		return nil, errors.Annotate(err, "listing planets")
	}
	return planets, nil
}

// GetPlanet returns the planet with the given id
func (q *Queries) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	var planet models.Planet
	err := q.get(ctx, &planet, "SELECT "+planetColumns+" FROM planets WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return models.Planet{}, errors.NotFoundf("planet %d", id)
	}
	if err != nil {
		return models.Planet{}, errors.Annotatef(err, "getting planet %d", id)
	}
	return planet, nil
}

// FindPlanetByName returns the first planet with exactly this name
func (q *Queries) FindPlanetByName(ctx context.Context, name string) (models.Planet, error) {
	var planet models.Planet
	err := q.get(ctx, &planet, "SELECT "+planetColumns+" FROM planets WHERE name = ? ORDER BY id LIMIT 1", name)
	if err == sql.ErrNoRows {
		return models.Planet{}, errors.NotFoundf("planet %q", name)
	}
	if err != nil {
		return models.Planet{}, errors.Annotatef(err, "finding planet %q", name)
	}
	return planet, nil
}

// PlanetExists reports whether a planet with the given id exists
func (q *Queries) PlanetExists(ctx context.Context, id int64) (bool, error) {
	n, err := q.count(ctx, "SELECT COUNT(*) FROM planets WHERE id = ?", id)
	if err != nil {
		return false, errors.Annotatef(err, "checking planet %d", id)
	}
	return n > 0, nil
}

// CreatePlanet persists a planet and returns it with its assigned id
func (q *Queries) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	if planet.Name == "" {
		return models.Planet{}, errors.NotValidf("empty planet name")
	}

	id, err := q.insert(ctx, "INSERT INTO planets (name, climate, terrain, population) VALUES (?, ?, ?, ?)",
		planet.Name, planet.Climate, planet.Terrain, planet.Population)
	if err != nil {
		return models.Planet{}, errors.Annotatef(err, "creating planet %q", planet.Name)
	}

	planet.ID = id
	return planet, nil
}
