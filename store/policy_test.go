package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The resolution grid, policy × match-state, over a container that still has
// room. Scenario: 6 live records in a capacity-8 container with an equal run
// at [2, 4]; the lower bound for the incoming item is 2 with a match and 3
// without one.
func TestPlanInsertGrid(t *testing.T) {
	const (
		count    = 6
		capacity = 8
	)
	type args struct {
		first, last, lower int
	}
	matched := args{first: 2, last: 4, lower: 2}
	unmatched := args{first: NoMatch, last: NoMatch, lower: 3}

	tests := []struct {
		name    string
		policy  InsertPolicy
		args    args
		want    Plan
		wantErr error
	}{
		{"any/no-match", InsertAny, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"any/match", InsertAny, matched, Plan{ActionInsert, 2, 0}, nil},
		{"first/no-match", InsertFirst, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"first/match", InsertFirst, matched, Plan{ActionInsert, 2, 0}, nil},
		{"last/no-match", InsertLast, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"last/match", InsertLast, matched, Plan{ActionInsert, 5, 0}, nil},
		{"update-first/no-match", UpdateFirst, unmatched, Plan{}, ErrNotFound},
		{"update-first/match", UpdateFirst, matched, Plan{ActionReplace, 2, 0}, nil},
		{"update-last/no-match", UpdateLast, unmatched, Plan{}, ErrNotFound},
		{"update-last/match", UpdateLast, matched, Plan{ActionReplace, 4, 0}, nil},
		{"update-all/no-match", UpdateAll, unmatched, Plan{}, ErrNotFound},
		{"update-all/match", UpdateAll, matched, Plan{ActionReplaceRun, 2, 4}, nil},
		{"upsert-first/no-match", UpsertFirst, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"upsert-first/match", UpsertFirst, matched, Plan{ActionReplace, 2, 0}, nil},
		{"upsert-last/no-match", UpsertLast, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"upsert-last/match", UpsertLast, matched, Plan{ActionReplace, 4, 0}, nil},
		{"unique/no-match", InsertUnique, unmatched, Plan{ActionInsert, 3, 0}, nil},
		{"unique/match", InsertUnique, matched, Plan{}, ErrExists},
		{"duplicate/no-match", InsertDuplicate, unmatched, Plan{}, ErrNotFound},
		{"duplicate/match", InsertDuplicate, matched, Plan{ActionInsert, 5, 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanInsert(count, capacity, tt.args.first, tt.args.last, tt.args.lower, tt.policy)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Update-only branches never consume a slot, so at capacity they must
// succeed while every insert branch fails with ErrFull.
func TestPlanInsertFullContainer(t *testing.T) {
	const (
		count    = 8
		capacity = 8
	)
	first, last, lower := 2, 4, 2

	updates := []InsertPolicy{UpdateFirst, UpdateLast, UpdateAll, UpsertFirst, UpsertLast}
	for _, p := range updates {
		_, err := PlanInsert(count, capacity, first, last, lower, p)
		assert.NoError(t, err, "policy %d must update a full container", p)
	}

	inserts := []InsertPolicy{InsertAny, InsertFirst, InsertLast, InsertDuplicate}
	for _, p := range inserts {
		_, err := PlanInsert(count, capacity, first, last, lower, p)
		assert.ErrorIs(t, err, ErrFull, "policy %d must reject a full container", p)
	}

	// A fresh key cannot enter a full container under any insert policy,
	// unique included.
	_, err := PlanInsert(count, capacity, NoMatch, NoMatch, 5, InsertUnique)
	assert.ErrorIs(t, err, ErrFull)

	// Upserts on a fresh key degrade to inserts and must also reject.
	_, err = PlanInsert(count, capacity, NoMatch, NoMatch, 5, UpsertFirst)
	assert.ErrorIs(t, err, ErrFull)
}

func TestPlanInsertUnknownPolicy(t *testing.T) {
	_, err := PlanInsert(0, 4, NoMatch, NoMatch, 0, InsertPolicy(250))
	assert.ErrorIs(t, err, ErrParam)
}
