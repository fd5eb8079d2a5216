package game

import "testing"

func objByID(objs []Objective, id string) *Objective {
	for i := range objs {
		if objs[i].ID == id {
			return &objs[i]
		}
	}
	return nil
}

func TestObjectiveRules(t *testing.T) {
	t.Run("sulfur", func(t *testing.T) {
		objs := newObjectives()
		evaluateObjectives(objs, "fe", TileNormal, false, 0)
		if objByID(objs, ObjSulfur).Done {
			t.Fatal("iron guess completed SULFUR")
		}
		evaluateObjectives(objs, "s", TileNormal, false, 0)
		if !objByID(objs, ObjSulfur).Done {
			t.Fatal("sulfur guess did not complete SULFUR")
		}
	})

	t.Run("crater", func(t *testing.T) {
		objs := newObjectives()
		evaluateObjectives(objs, "fe", TileNormal, false, 0)
		if objByID(objs, ObjCrater).Done {
			t.Fatal("flat ground completed CRATER")
		}
		for _, tile := range []TileType{TileRim, TileCrater} {
			objs = newObjectives()
			evaluateObjectives(objs, "fe", tile, false, 0)
			if !objByID(objs, ObjCrater).Done {
				t.Fatalf("%s did not complete CRATER", tile)
			}
		}
	})

	t.Run("psr edge", func(t *testing.T) {
		objs := newObjectives()
		evaluateObjectives(objs, "fe", TileNormal, true, 0)
		if !objByID(objs, ObjPSREdge).Done {
			t.Fatal("PSR adjacency did not complete PSR_EDGE")
		}
	})

	t.Run("map100", func(t *testing.T) {
		objs := newObjectives()
		evaluateObjectives(objs, "fe", TileNormal, false, 59.9)
		if objByID(objs, ObjMap100).Done {
			t.Fatal("59.9 Mb completed MAP100")
		}
		evaluateObjectives(objs, "fe", TileNormal, false, 60)
		if !objByID(objs, ObjMap100).Done {
			t.Fatal("60 Mb did not complete MAP100")
		}
	})
}

func TestObjectivesMonotone(t *testing.T) {
	objs := newObjectives()
	evaluateObjectives(objs, "s", TileRim, true, 80) // completes everything

	for _, o := range objs {
		if !o.Done {
			t.Fatalf("%s not done after qualifying guess", o.ID)
		}
	}

	// Subsequent disqualifying evaluations must not revert anything.
	evaluateObjectives(objs, "fe", TileNormal, false, 0)
	for _, o := range objs {
		if !o.Done {
			t.Fatalf("%s reverted after later evaluation", o.ID)
		}
	}
}

func TestEvaluateReportsCompletions(t *testing.T) {
	objs := newObjectives()
	done := evaluateObjectives(objs, "s", TileNormal, false, 0)
	if len(done) != 1 || done[0] != ObjSulfur {
		t.Fatalf("completed = %v, want [SULFUR]", done)
	}

	// Already-done objectives are not reported again.
	done = evaluateObjectives(objs, "s", TileNormal, false, 0)
	if len(done) != 0 {
		t.Fatalf("re-evaluation reported %v", done)
	}
}
