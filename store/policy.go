package store

// InsertPolicy selects the behavior of a sorted insert when the container
// already holds records comparing equal to the incoming one. Policies are
// stateless and passed per call.
type InsertPolicy uint8

const (
	// InsertAny inserts at the lower bound, before any equal run.
	InsertAny InsertPolicy = iota
	// InsertFirst inserts immediately before the first equal record.
	InsertFirst
	// InsertLast inserts immediately after the last equal record.
	InsertLast
	// UpdateFirst overwrites the first equal record; ErrNotFound without one.
	UpdateFirst
	// UpdateLast overwrites the last equal record; ErrNotFound without one.
	UpdateLast
	// UpdateAll overwrites every record in the equal run; ErrNotFound
	// without one.
	UpdateAll
	// UpsertFirst overwrites the first equal record, else inserts.
	UpsertFirst
	// UpsertLast overwrites the last equal record, else inserts.
	UpsertLast
	// InsertUnique inserts only when no equal record exists; ErrExists
	// otherwise.
	InsertUnique
	// InsertDuplicate inserts after the equal run only when one exists;
	// ErrNotFound otherwise.
	InsertDuplicate
)

// Action is the mutation a resolved insert plan calls for.
type Action uint8

const (
	// ActionInsert shifts the tail right and writes the item at Plan.Index.
	ActionInsert Action = iota
	// ActionReplace overwrites the record at Plan.Index.
	ActionReplace
	// ActionReplaceRun overwrites every record in [Plan.Index, Plan.Last].
	ActionReplaceRun
)

// Plan is the outcome of policy resolution: which mutation to perform and
// where. Last is meaningful only for ActionReplaceRun.
type Plan struct {
	Action Action
	Index  int
	Last   int
}

// NoMatch marks an absent first/last match index.
const NoMatch = -1

// PlanInsert resolves one sorted-insert request against the policy table.
// The caller supplies the state of the container: live record count and
// capacity, the equal run [firstMatch, lastMatch] (both NoMatch when the run
// is empty), and the lower-bound index for the incoming item. The returned
// plan preserves ascending order when executed.
//
// Update-only outcomes never consume a slot, so they succeed on a full
// container; every insert outcome fails with ErrFull at capacity. When an
// upsert finds no match it inserts at the lower bound — there is no existing
// run for "first" or "last" to be relative to.
func PlanInsert(count, capacity, firstMatch, lastMatch, lowerBound int, policy InsertPolicy) (Plan, error) {
	matched := firstMatch != NoMatch

	insert := func(at int) (Plan, error) {
		if count >= capacity {
			return Plan{}, ErrFull
		}
		return Plan{Action: ActionInsert, Index: at}, nil
	}

	switch policy {
	case InsertAny, InsertFirst:
		// Lower bound equals the first-match index whenever a run exists.
		return insert(lowerBound)

	case InsertLast:
		if matched {
			return insert(lastMatch + 1)
		}
		return insert(lowerBound)

	case UpdateFirst:
		if !matched {
			return Plan{}, ErrNotFound
		}
		return Plan{Action: ActionReplace, Index: firstMatch}, nil

	case UpdateLast:
		if !matched {
			return Plan{}, ErrNotFound
		}
		return Plan{Action: ActionReplace, Index: lastMatch}, nil

	case UpdateAll:
		if !matched {
			return Plan{}, ErrNotFound
		}
		return Plan{Action: ActionReplaceRun, Index: firstMatch, Last: lastMatch}, nil

	case UpsertFirst:
		if matched {
			return Plan{Action: ActionReplace, Index: firstMatch}, nil
		}
		return insert(lowerBound)

	case UpsertLast:
		if matched {
			return Plan{Action: ActionReplace, Index: lastMatch}, nil
		}
		return insert(lowerBound)

	case InsertUnique:
		if matched {
			return Plan{}, ErrExists
		}
		return insert(lowerBound)

	case InsertDuplicate:
		if !matched {
			return Plan{}, ErrNotFound
		}
		return insert(lastMatch + 1)
	}

	return Plan{}, ErrParam
}
