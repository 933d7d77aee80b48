package host_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temporalgraph/chronosolve/host"
	"github.com/temporalgraph/chronosolve/temporal"
)

func ev(id string, d temporal.DurationType) temporal.Event {
	return temporal.Event{ID: id, Duration: d, Enabled: true}
}

func TestWorker_EmitsReadyOnStartup(t *testing.T) {
	w := host.NewWorker(nil)
	defer w.Stop()

	select {
	case resp := <-w.Responses():
		require.Equal(t, host.ResponseReady, resp.Type)
	case <-time.After(time.Second):
		t.Fatal("worker never emitted ready")
	}
}

func TestWorker_SolvesAndReturnsResult(t *testing.T) {
	w := host.NewWorker(nil)
	defer w.Stop()
	<-w.Responses() // ready

	id := w.Submit([]temporal.Event{ev("A", temporal.Instant)}, nil)

	select {
	case resp := <-w.Responses():
		require.Equal(t, host.ResponseResult, resp.Type)
		require.Equal(t, id, resp.RequestID)
		require.NotNil(t, resp.Result)
		require.Equal(t, temporal.Satisfiable, resp.Result.Status)
	case <-time.After(time.Second):
		t.Fatal("worker never responded")
	}
}

func TestWorker_RecoversFromUnrecognizedRelationPanic(t *testing.T) {
	w := host.NewWorker(nil)
	defer w.Stop()
	<-w.Responses() // ready

	events := []temporal.Event{ev("A", temporal.Instant), ev("B", temporal.Instant)}
	assertions := []temporal.Assertion{
		{ID: "bad", SourceID: "A", TargetID: "B", Relation: temporal.Relation("adjacent-to"), Confidence: temporal.Explicit, Enabled: true},
	}

	id := w.Submit(events, assertions)

	select {
	case resp := <-w.Responses():
		require.Equal(t, host.ResponseError, resp.Type)
		require.Equal(t, id, resp.RequestID)
		require.Equal(t, "solver worker crashed", resp.ErrorMessage)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never responded")
	}
}

func TestWorker_SurvivesCrashAndServicesNextRequest(t *testing.T) {
	w := host.NewWorker(nil)
	defer w.Stop()
	<-w.Responses() // ready

	badEvents := []temporal.Event{ev("A", temporal.Instant), ev("B", temporal.Instant)}
	badAssertions := []temporal.Assertion{
		{ID: "bad", SourceID: "A", TargetID: "B", Relation: temporal.Relation("nonsense"), Confidence: temporal.Explicit, Enabled: true},
	}
	w.Submit(badEvents, badAssertions)

	select {
	case resp := <-w.Responses():
		require.Equal(t, host.ResponseError, resp.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never responded to crashing request")
	}

	id := w.Submit([]temporal.Event{ev("C", temporal.Instant)}, nil)

	select {
	case resp := <-w.Responses():
		require.Equal(t, host.ResponseResult, resp.Type)
		require.Equal(t, id, resp.RequestID)
	case <-time.After(time.Second):
		t.Fatal("worker did not recover to service a later request")
	}
}
