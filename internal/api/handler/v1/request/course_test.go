package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHolesRequestUnmarshal(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		var req CreateHolesRequest

		require.NoError(t, json.Unmarshal([]byte(`{"number":1,"par":4}`), &req))

		require.Len(t, req.Holes, 1)
		assert.Equal(t, 1, req.Holes[0].Number)
		assert.Equal(t, 4, req.Holes[0].Par)
	})

	t.Run("list of objects", func(t *testing.T) {
		var req CreateHolesRequest

		require.NoError(t, json.Unmarshal([]byte(`[{"number":1,"par":4},{"number":2,"par":3}]`), &req))

		assert.Len(t, req.Holes, 2)
	})

	t.Run("yardages by colour", func(t *testing.T) {
		var req CreateHolesRequest

		require.NoError(t, json.Unmarshal([]byte(`{"number":1,"par":4,"tees":[{"colour":"red","yardage":310}]}`), &req))

		require.Len(t, req.Holes, 1)
		require.Len(t, req.Holes[0].Tees, 1)
		assert.Equal(t, "red", req.Holes[0].Tees[0].Colour)
		assert.Equal(t, 310, req.Holes[0].Tees[0].Yardage)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		var req CreateHolesRequest
		assert.Error(t, json.Unmarshal([]byte(`"nope"`), &req))
	})
}

func TestCreateHolesRequestValidate(t *testing.T) {
	empty := CreateHolesRequest{}
	assert.Error(t, empty.Validate())

	valid := CreateHolesRequest{Holes: []HoleRequest{{Number: 1, Par: 4}}}
	assert.NoError(t, valid.Validate())

	missingPar := CreateHolesRequest{Holes: []HoleRequest{{Number: 1}}}
	assert.Error(t, missingPar.Validate())
}

func TestCreateScorecardRequestValidate(t *testing.T) {
	valid := CreateScorecardRequest{
		Tees:  []ScorecardTeeRequest{{Colour: "red"}},
		Holes: []HoleRequest{{Number: 1, Par: 4}},
	}
	assert.NoError(t, valid.Validate())

	noTees := CreateScorecardRequest{Holes: []HoleRequest{{Number: 1, Par: 4}}}
	assert.Error(t, noTees.Validate())

	noHoles := CreateScorecardRequest{Tees: []ScorecardTeeRequest{{Colour: "red"}}}
	assert.Error(t, noHoles.Validate())
}

func TestCreateCourseRequestValidate(t *testing.T) {
	valid := CreateCourseRequest{Name: "Pine Valley", Location: "NJ"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateCourseRequest{Name: "Pine Valley"}).Validate())
	assert.Error(t, (&CreateCourseRequest{Location: "NJ"}).Validate())
}
