package store

import (
	"context"
	"database/sql"

	"starwars-api/models"

	"github.com/juju/errors"
)

const selectPeople = `SELECT p.id, p.name, p.species, p.birth_year, p.gender, p.planet_id, pl.name AS planet
FROM people p
LEFT JOIN planets pl ON pl.id = p.planet_id`

// ListPeople returns all people in primary key order
func (q *Queries) ListPeople(ctx context.Context) ([]models.Person, error) {
	people := []models.Person{}
	if err := q.selectAll(ctx, &people, selectPeople+" ORDER BY p.id"); err != nil {
		return nil, errors.Annotate(err, "listing people")
	}
	return people, nil
}

// GetPerson returns the person with the given id
func (q *Queries) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	var person models.Person
	err := q.get(ctx, &person, selectPeople+" WHERE p.id = ?", id)
	if err == sql.ErrNoRows {
		return models.Person{}, errors.NotFoundf("person %d", id)
	}
	if err != nil {
		return models.Person{}, errors.Annotatef(err, "getting person %d", id)
	}
	return person, nil
}

// PersonExists reports whether a person with the given id exists
func (q *Queries) PersonExists(ctx context.Context, id int64) (bool, error) {
	n, err := q.count(ctx, "SELECT COUNT(*) FROM people WHERE id = ?", id)
	if err != nil {
		return false, errors.Annotatef(err, "checking person %d", id)
	}
	return n > 0, nil
}

// CountPeople returns the number of stored people
func (q *Queries) CountPeople(ctx context.Context) (int, error) {
	n, err := q.count(ctx, "SELECT COUNT(*) FROM people")
	if err != nil {
		return 0, errors.Annotate(err, "counting people")
	}
	return n, nil
}

// CreatePerson persists a person. The referenced planet must exist.
func (q *Queries) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	if person.Name == "" {
		return models.Person{}, errors.NotValidf("empty person name")
	}
	if person.PlanetID == nil {
		return models.Person{}, errors.NotValidf("person missing planet_id")
	}

	planet, err := q.GetPlanet(ctx, *person.PlanetID)
	if err != nil {
		return models.Person{}, errors.Trace(err)
	}

	id, err := q.insert(ctx, "INSERT INTO people (name, species, birth_year, gender, planet_id) VALUES (?, ?, ?, ?, ?)",
		person.Name, person.Species, person.BirthYear, person.Gender, person.PlanetID)
	if errors.Is(err, errors.NotFound) {
		return models.Person{}, errors.NotFoundf("planet %d", *person.PlanetID)
	}
	if err != nil {
		return models.Person{}, errors.Annotatef(err, "creating person %q", person.Name)
	}

	person.ID = id
	person.PlanetName = &planet.Name
	return person, nil
}
