/*
Package game
File: objectives.go
Description:
    Mission objective definitions and evaluation. Objectives are checked
    after every correct spectrum guess; completion is monotone (a Done flag
    never reverts).
*/

package game

// Objective IDs. Stable across snapshots; the UI keys its checklist on them.
const (
	ObjSulfur  = "SULFUR"   // Detect sulfur in any sample
	ObjCrater  = "CRATER"   // Complete an analysis on crater terrain
	ObjPSREdge = "PSR_EDGE" // Complete an analysis adjacent to a shadowed region
	ObjMap100  = "MAP100"   // Hold 60+ Mb of survey data at once
)

// sulfurKey is the catalog key the SULFUR objective watches for.
const sulfurKey = "s"

// newObjectives returns the fixed objective set every mission starts with.
func newObjectives() []Objective {
	return []Objective{
		{ID: ObjSulfur, Description: "Confirm sulfur deposits in a surface sample"},
		{ID: ObjCrater, Description: "Analyze material on a crater floor or rim"},
		{ID: ObjPSREdge, Description: "Sample the edge of a permanently shadowed region"},
		{ID: ObjMap100, Description: "Accumulate 60 Mb of survey data in the buffer"},
	}
}

// evaluateObjectives re-checks all open objectives after a correct guess.
// Already-done objectives are skipped. Returns the IDs completed this call.
func evaluateObjectives(objs []Objective, guessedKey string, tile TileType, adjacentPSR bool, buffer float64) []string {
	completed := []string{}
	for i := range objs {
		if objs[i].Done {
			continue
		}

		done := false
		switch objs[i].ID {
		case ObjSulfur:
			done = guessedKey == sulfurKey
		case ObjCrater:
			done = tile == TileRim || tile == TileCrater
		case ObjPSREdge:
			done = adjacentPSR
		case ObjMap100:
			done = buffer >= 60
		}

		if done {
			objs[i].Done = true
			completed = append(completed, objs[i].ID)
		}
	}
	return completed
}
