package repository

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a flight must take its tickets and crew assignments with it,
// and the same applies down the reference chain (type -> airplane ->
// flight, country -> location -> airport -> route -> flight). The
// repositories issue plain DELETEs and rely on the schema to cascade,
// so every dependent foreign key has to declare ON DELETE CASCADE.
func TestSchemaCascadeDeletes(t *testing.T) {
	schema, err := os.ReadFile("../../migrations/0001_init.sql")
	require.NoError(t, err)

	cascading := []string{
		"fk_airplanes_airplane_type",
		"fk_locations_country",
		"fk_airports_location",
		"fk_routes_origin",
		"fk_routes_destination",
		"fk_flights_airplane",
		"fk_flights_route",
		"fk_flight_crew_flight",
		"fk_flight_crew_crew",
		"fk_tickets_flight",
		"fk_tickets_order",
	}
	for _, name := range cascading {
		re := regexp.MustCompile(`(?s)CONSTRAINT ` + name + ` FOREIGN KEY[^,;]*?ON DELETE CASCADE`)
		assert.True(t, re.Match(schema), "constraint %s must cascade on delete", name)
	}
}
