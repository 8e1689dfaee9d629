package journey_test

import (
	"context"
	"errors"
	"testing"

	"optout/internal/catalog"
	"optout/internal/journey"
	"optout/internal/testsupport"
)

func seededBroker() *catalog.Broker {
	return &catalog.Broker{
		Name: "Spokeo",
		Seed: &catalog.JourneySeed{
			StepsEN: []string{"Search for your listing.", "Submit the opt-out form.", "Confirm via email."},
			StepsES: []string{"Busque su registro.", "Envíe el formulario de exclusión.", "Confirme por correo."},
		},
	}
}

func TestGetReturnsNilWhenAbsent(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	j, err := store.Get(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if j != nil {
		t.Fatalf("Get returned %+v for an absent broker", j)
	}
}

func TestGetOrCreateSeedsFromCuratedSteps(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	j, err := store.GetOrCreate(ctx, seededBroker())
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(j.StepsEN) != 3 || len(j.StepsES) != 3 {
		t.Fatalf("seeded steps: en=%d es=%d", len(j.StepsEN), len(j.StepsES))
	}
	if j.CurrentStep != 0 || j.Completed {
		t.Fatalf("fresh journey: step=%d completed=%v", j.CurrentStep, j.Completed)
	}

	again, err := store.GetOrCreate(ctx, seededBroker())
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.CreatedAt.IsZero() || !again.CreatedAt.Equal(j.CreatedAt) {
		t.Fatalf("second GetOrCreate changed CreatedAt: %v vs %v", again.CreatedAt, j.CreatedAt)
	}
}

func TestGetOrCreateSynthesizesWithoutSeed(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	b := &catalog.Broker{
		Name:         "Acme Lookup",
		Instructions: "opt out via the website",
	}
	j, err := store.GetOrCreate(context.Background(), b)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(j.StepsEN) == 0 {
		t.Fatalf("no synthesized steps")
	}
	if len(j.StepsEN) != len(j.StepsES) {
		t.Fatalf("lists diverged: en=%d es=%d", len(j.StepsEN), len(j.StepsES))
	}
}

func TestAdvanceRewindPersist(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, seededBroker()); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	j, err := store.Advance(ctx, "Spokeo")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if j.CurrentStep != 1 {
		t.Fatalf("CurrentStep = %d", j.CurrentStep)
	}

	reloaded, err := store.Get(ctx, "Spokeo")
	if err != nil || reloaded == nil {
		t.Fatalf("Get after Advance: %v, %v", reloaded, err)
	}
	if reloaded.CurrentStep != 1 {
		t.Fatalf("persisted CurrentStep = %d", reloaded.CurrentStep)
	}

	j, err = store.Rewind(ctx, "Spokeo")
	if err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	if j.CurrentStep != 0 {
		t.Fatalf("after rewind CurrentStep = %d", j.CurrentStep)
	}
}

func TestAdvanceThroughCompletion(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, seededBroker()); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	var j *journey.Journey
	var err error
	for i := 0; i < 3; i++ {
		j, err = store.Advance(ctx, "Spokeo")
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}
	if !j.Completed || j.CurrentStep != 2 {
		t.Fatalf("after full walk: step=%d completed=%v", j.CurrentStep, j.Completed)
	}

	done, err := store.CompletedBrokers(ctx)
	if err != nil {
		t.Fatalf("CompletedBrokers: %v", err)
	}
	if !done["Spokeo"] {
		t.Fatalf("completed set missing Spokeo: %v", done)
	}
}

func TestMutationsOnMissingJourney(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := store.Advance(ctx, "Nobody"); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("Advance on missing journey: %v", err)
	}
	if _, err := store.Reorder(ctx, "Nobody", 0, 1); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("Reorder on missing journey: %v", err)
	}
}

func TestAppendStepCreatesWhenAbsent(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	j, err := store.AppendStep(ctx, "Fresh Broker", "call the records office")
	if err != nil {
		t.Fatalf("AppendStep: %v", err)
	}
	if len(j.StepsEN) != 1 || len(j.StepsES) != 1 {
		t.Fatalf("steps: en=%d es=%d", len(j.StepsEN), len(j.StepsES))
	}
	if j.StepsEN[0] != "call the records office" {
		t.Fatalf("step = %q", j.StepsEN[0])
	}
}

func TestReorderPersistsBothLists(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, seededBroker()); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if _, err := store.Reorder(ctx, "Spokeo", 0, 2); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	j, err := store.Get(ctx, "Spokeo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if j.StepsEN[2] != "Search for your listing." || j.StepsES[2] != "Busque su registro." {
		t.Fatalf("reorder not applied in lockstep: %v / %v", j.StepsEN, j.StepsES)
	}
}

func TestListOrdersByBroker(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alpha"} {
		if _, err := store.AppendStep(ctx, name, "step"); err != nil {
			t.Fatalf("AppendStep %s: %v", name, err)
		}
	}
	journeys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(journeys) != 2 || journeys[0].Broker != "Alpha" || journeys[1].Broker != "Zeta" {
		t.Fatalf("List order: %+v", journeys)
	}
}
