package services

import (
	"fmt"
	"strings"

	"github.com/emre/schoolhub/internal/pkg/logger"
)

// CascadeOutcome records what each dependent store reported while a class
// (or a whole school scope) was being torn down. The saga never rolls
// back: outcomes stay as the record of what actually happened.
type CascadeOutcome struct {
	StudentsDeleted int64 `json:"studentsDeleted"`
	SubjectsDeleted int64 `json:"subjectsDeleted"`
	TeachersDeleted int64 `json:"teachersDeleted"`

	// FailedStores names the dependent stores whose delete faulted.
	FailedStores []string `json:"failedStores,omitempty"`
}

type cascadeStep struct {
	store string
	run   func() (int64, error)
	count *int64
}

// runCascade executes the steps in order, recording each store's count.
// A faulting step is recorded and the saga continues; after all steps the
// collected faults surface as a single store error.
func runCascade(outcome *CascadeOutcome, steps []cascadeStep) error {
	var errs []string
	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			logger.Error().Err(err).Str("store", step.store).Msg("Cascade step failed")
			outcome.FailedStores = append(outcome.FailedStores, step.store)
			errs = append(errs, fmt.Sprintf("%s: %v", step.store, err))
			continue
		}
		if step.count != nil {
			*step.count += n
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cascade delete failed in stores [%s]", strings.Join(errs, "; "))
	}
	return nil
}
