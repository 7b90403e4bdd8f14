package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStringMissingField(t *testing.T) {
	rec := Record{}

	_, err := rec.String("id")

	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), `missing field "id"`)
}

func TestRecordStringWrongType(t *testing.T) {
	rec := Record{"id": int64(7)}

	_, err := rec.String("id")

	require.ErrorIs(t, err, ErrDecode)
}

func TestRecordString(t *testing.T) {
	rec := Record{"name": "Intro to CS"}

	got, err := rec.String("name")

	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", got)
}

func TestRecordNullableString(t *testing.T) {
	rec := Record{"relationship_id": nil}

	got, err := rec.NullableString("relationship_id")

	require.NoError(t, err)
	assert.Nil(t, got)

	rec["relationship_id"] = "G1"
	got, err = rec.NullableString("relationship_id")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "G1", *got)
}

func TestRecordNullableStringRejectsNonString(t *testing.T) {
	rec := Record{"relationship_id": true}

	_, err := rec.NullableString("relationship_id")

	require.ErrorIs(t, err, ErrDecode)
}

func TestRecordBool(t *testing.T) {
	rec := Record{"can_take_concurrent": true}

	got, err := rec.Bool("can_take_concurrent")

	require.NoError(t, err)
	assert.True(t, got)

	_, err = rec.Bool("missing")
	require.ErrorIs(t, err, ErrDecode)
}

func TestRecordNumericCoercion(t *testing.T) {
	rec := Record{"credits": int64(3), "crn": 12345.0}

	credits, err := rec.Float64("credits")
	require.NoError(t, err)
	assert.Equal(t, 3.0, credits)

	crn, err := rec.Int64("crn")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), crn)
}

func TestRecordNumericWrongType(t *testing.T) {
	rec := Record{"credits": "three"}

	_, err := rec.Float64("credits")
	require.ErrorIs(t, err, ErrDecode)

	_, err = rec.Int64("credits")
	require.ErrorIs(t, err, ErrDecode)
}

func TestRecordNullableNumbers(t *testing.T) {
	rec := Record{"avg_rating": nil, "num_ratings": nil}

	rating, err := rec.NullableFloat64("avg_rating")
	require.NoError(t, err)
	assert.Nil(t, rating)

	count, err := rec.NullableInt64("num_ratings")
	require.NoError(t, err)
	assert.Nil(t, count)

	rec["avg_rating"] = 4.2
	rec["num_ratings"] = int64(18)

	rating, err = rec.NullableFloat64("avg_rating")
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4.2, *rating)

	count, err = rec.NullableInt64("num_ratings")
	require.NoError(t, err)
	require.NotNil(t, count)
	assert.Equal(t, int64(18), *count)
}
