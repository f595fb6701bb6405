package services

import (
	"context"
	"strings"

	"starwars-api/models"
	"starwars-api/store"

	"github.com/juju/errors"
)

// CatalogService serves people and planets
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a catalog service
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// ListPlanets returns all planets
func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.store.ListPlanets(ctx)
	return planets, errors.Trace(err)
}

// GetPlanet returns a single planet
func (s *CatalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	planet, err := s.store.GetPlanet(ctx, id)
	return planet, errors.Trace(err)
}

// CreatePlanet validates and persists a planet
func (s *CatalogService) CreatePlanet(ctx context.Context, req models.CreatePlanetRequest) (models.Planet, error) {
	planet := models.Planet{
		Name:       strings.TrimSpace(req.Name),
		Climate:    strings.TrimSpace(req.Climate),
		Terrain:    strings.TrimSpace(req.Terrain),
		Population: req.Population,
	}
	if planet.Name == "" {
		return models.Planet{}, errors.NotValidf("empty name")
	}
	if planet.Population != nil && *planet.Population < 0 {
		return models.Planet{}, errors.NotValidf("negative population")
	}
	for _, check := range []error{
		checkLen("name", planet.Name, maxPlanetName),
		checkLen("climate", planet.Climate, maxPlanetDetail),
		checkLen("terrain", planet.Terrain, maxPlanetDetail),
	} {
		if check != nil {
			return models.Planet{}, errors.Trace(check)
		}
	}

	created, err := s.store.CreatePlanet(ctx, planet)
	return created, errors.Trace(err)
}

// ListPeople returns all people
func (s *CatalogService) ListPeople(ctx context.Context) ([]models.Person, error) {
	people, err := s.store.ListPeople(ctx)
	return people, errors.Trace(err)
}

// GetPerson returns a single person
func (s *CatalogService) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	person, err := s.store.GetPerson(ctx, id)
	return person, errors.Trace(err)
}

// CreatePerson validates and persists a person. planet_id is required and
// must resolve to an existing planet, otherwise nothing is written.
func (s *CatalogService) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (models.Person, error) {
	person := models.Person{
		Name:      strings.TrimSpace(req.Name),
		Species:   strings.TrimSpace(req.Species),
		BirthYear: strings.TrimSpace(req.BirthYear),
		Gender:    strings.TrimSpace(req.Gender),
		PlanetID:  req.PlanetID,
	}
	if person.PlanetID == nil {
		return models.Person{}, errors.NotValidf("missing planet_id")
	}
	if person.Name == "" {
		return models.Person{}, errors.NotValidf("empty name")
	}
	for _, check := range []error{
		checkLen("name", person.Name, maxPersonName),
		checkLen("species", person.Species, maxPersonDetail),
		checkLen("birth_year", person.BirthYear, maxPersonDetail),
		checkLen("gender", person.Gender, maxPersonDetail),
	} {
		if check != nil {
			return models.Person{}, errors.Trace(check)
		}
	}

	var created models.Person
	err := s.store.InTx(ctx, func(q *store.Queries) error {
		var err error
		created, err = q.CreatePerson(ctx, person)
		return errors.Trace(err)
	})
	if err != nil {
		return models.Person{}, errors.Trace(err)
	}
	return created, nil
}
