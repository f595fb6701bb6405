package database

import (
	"context"
	_ "embed"

	"starwars-api/models"
	"starwars-api/store"

	"github.com/goccy/go-yaml"
	"github.com/juju/errors"
)

//go:embed seed/starwars.yaml
var defaultSeed []byte

// DefaultSeed returns the bundled catalogue of planets and residents
func DefaultSeed() []byte {
	return defaultSeed
}

type seedFile struct {
	Planets []seedPlanet `yaml:"planets"`
}

type seedPlanet struct {
	Name       string       `yaml:"name"`
	Climate    string       `yaml:"climate"`
	Terrain    string       `yaml:"terrain"`
	Population *int64       `yaml:"population"`
	Residents  []seedPerson `yaml:"residents"`
}

type seedPerson struct {
	Name      string `yaml:"name"`
	Species   string `yaml:"species"`
	BirthYear string `yaml:"birth_year"`
	Gender    string `yaml:"gender"`
}

// SeedResult counts the records a seed run inserted
type SeedResult struct {
	Planets int
	People  int
}

// Seed loads planets and their residents from YAML. Planets that already
// exist by name are skipped together with their residents, so seeding twice
// inserts nothing the second time. The whole run is one transaction.
func Seed(ctx context.Context, st *store.Store, data []byte) (SeedResult, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return SeedResult{}, errors.Annotate(err, "parsing seed file")
	}

	var result SeedResult
	err := st.InTx(ctx, func(q *store.Queries) error {
		for _, sp := range file.Planets {
			_, err := q.FindPlanetByName(ctx, sp.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, errors.NotFound) {
				return errors.Trace(err)
			}

			planet, err := q.CreatePlanet(ctx, models.Planet{
				Name:       sp.Name,
				Climate:    sp.Climate,
				Terrain:    sp.Terrain,
				Population: sp.Population,
			})
			if err != nil {
				return errors.Trace(err)
			}
			result.Planets++

			for _, resident := range sp.Residents {
				_, err := q.CreatePerson(ctx, models.Person{
					Name:      resident.Name,
					Species:   resident.Species,
					BirthYear: resident.BirthYear,
					Gender:    resident.Gender,
					PlanetID:  &planet.ID,
				})
				if err != nil {
					return errors.Annotatef(err, "seeding resident %q of %q", resident.Name, sp.Name)
				}
				result.People++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, errors.Trace(err)
	}
	return result, nil
}
