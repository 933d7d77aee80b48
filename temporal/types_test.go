package temporal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalgraph/chronosolve/temporal"
)

func TestNewEvent_SynthesizesIDWhenEmpty(t *testing.T) {
	e := temporal.NewEvent("", temporal.Instant)
	assert.NotEmpty(t, e.ID)
	assert.True(t, e.Enabled)
}

func TestNewEvent_KeepsExplicitID(t *testing.T) {
	e := temporal.NewEvent("A", temporal.Interval)
	assert.Equal(t, "A", e.ID)
}

func TestStartVarEndVar(t *testing.T) {
	assert.Equal(t, "A_start", temporal.StartVar("A"))
	assert.Equal(t, "A_end", temporal.EndVar("A"))
}

func TestRelation_Inverse_AllThirteen(t *testing.T) {
	relations := []temporal.Relation{
		temporal.Before, temporal.After, temporal.Meets, temporal.MetBy,
		temporal.Overlaps, temporal.OverlappedBy, temporal.Starts, temporal.StartedBy,
		temporal.Finishes, temporal.FinishedBy, temporal.During, temporal.Contains,
		temporal.Equals,
	}
	for _, r := range relations {
		inv := r.Inverse()
		require.NotEmpty(t, inv)
		assert.Equal(t, r, inv.Inverse(), "inverse of inverse must be the original relation")
	}
}

func TestConfidence_WeightOrdering(t *testing.T) {
	assert.Less(t, temporal.Speculation.Weight(), temporal.Inferred.Weight())
	assert.Less(t, temporal.Inferred.Weight(), temporal.Explicit.Weight())
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	e := temporal.Event{ID: "A", Duration: temporal.Interval, Enabled: true}
	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"A","duration_type":"interval","enabled":true}`, string(raw))

	var decoded temporal.Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, e, decoded)
}

func TestAssertion_JSONRoundTrip(t *testing.T) {
	a := temporal.Assertion{
		ID: "a1", SourceID: "A", TargetID: "B",
		Relation: temporal.Before, Confidence: temporal.Explicit, Enabled: true,
	}
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded temporal.Assertion
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, a, decoded)
}

func TestDurationType_UnmarshalRejectsUnknown(t *testing.T) {
	var d temporal.DurationType
	err := json.Unmarshal([]byte(`"eternal"`), &d)
	assert.Error(t, err)
}

func TestConfidence_UnmarshalRejectsUnknown(t *testing.T) {
	var c temporal.Confidence
	err := json.Unmarshal([]byte(`"maybe"`), &c)
	assert.Error(t, err)
}
