package entity

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestNewEntityAlwaysHasAnIDScalar(t *testing.T) {
	is := is.New(t)

	e := New("Animal", 3)

	v, ok := e.Scalar("id")
	is.True(ok)
	is.Equal(v.Kind(), KindInt)

	encoded, err := v.Encode()
	is.NoErr(err)
	is.Equal(encoded, int64(3))
}

func TestScalarDecorators(t *testing.T) {
	is := is.New(t)

	e := New("Animal", 3,
		Text("name", "Crystal"),
		Text("species", "Ostrich"),
		Bool("tame", false),
	)

	name, ok := e.Scalar("name")
	is.True(ok)

	encoded, err := name.Encode()
	is.NoErr(err)
	is.Equal(encoded, "Crystal")

	_, ok = e.Scalar("weight")
	is.True(!ok) // weight should not exist
}

func TestDateValuesEncodeToISO8601(t *testing.T) {
	is := is.New(t)

	v := NewDateValue(time.Date(2000, time.December, 30, 14, 32, 5, 0, time.UTC))

	encoded, err := v.Encode()
	is.NoErr(err)
	is.Equal(encoded, "2000-12-30")
}

func TestDateValuesFromStringsValidateOnEncode(t *testing.T) {
	is := is.New(t)

	encoded, err := NewDateValueFromString("1987-04-12").Encode()
	is.NoErr(err)
	is.Equal(encoded, "1987-04-12")

	_, err = NewDateValueFromString("not a date").Encode()
	is.True(err != nil) // bad dates must not be coerced to anything
}

func TestEmptyDateStringsFailToEncode(t *testing.T) {
	is := is.New(t)

	encoded, err := NewDateValueFromString("").Encode()
	is.True(err != nil) // an absent date must not be coerced to the zero time
	is.Equal(encoded, nil)
}

func TestToOneRelationships(t *testing.T) {
	is := is.New(t)

	keeper := New("Zookeeper", 1, Text("name", "Christine Johnson"))
	animal := New("Animal", 3, R("zookeeper", keeper))

	rel, ok := animal.Relationship("zookeeper")
	is.True(ok)
	is.True(!rel.ToMany())
	is.Equal(len(rel.Related()), 1)
	is.Equal(rel.Related()[0].ID(), int64(1))
}

func TestUnassignedToOneRelationshipsAreEmpty(t *testing.T) {
	is := is.New(t)

	animal := New("Animal", 3, R("enclosure", nil))

	rel, ok := animal.Relationship("enclosure")
	is.True(ok)
	is.Equal(len(rel.Related()), 0)
}

func TestToManyRelationshipsPreserveOrder(t *testing.T) {
	is := is.New(t)

	first := New("Animal", 1)
	second := New("Animal", 2)
	keeper := New("Zookeeper", 1, RList("animals", first, second))

	rel, ok := keeper.Relationship("animals")
	is.True(ok)
	is.True(rel.ToMany())
	is.Equal(len(rel.Related()), 2)
	is.Equal(rel.Related()[0].ID(), int64(1))
	is.Equal(rel.Related()[1].ID(), int64(2))
}

func TestWithSupportsTwoPhaseAssemblyOfCycles(t *testing.T) {
	is := is.New(t)

	keeper := New("Zookeeper", 1)
	animal := New("Animal", 3, R("zookeeper", keeper))
	keeper.With(RList("animals", animal))

	rel, _ := keeper.Relationship("animals")
	back, _ := rel.Related()[0].Relationship("zookeeper")
	is.Equal(back.Related()[0].ID(), int64(1)) // cycle should point back at the keeper
}
