package installer

import (
	"bootstrap-machine/internal/logger"
)

// Report summarizes one walk over the catalogue.
type Report struct {
	Completed []string // actions that ran to the end (possibly with warnings)
	Skipped   []string // actions never reached because an earlier one failed
	Warnings  int      // count of non-fatal problems logged along the way
	Failed    string   // name of the action that failed fatally, if any
	Err       error    // the fatal error, nil on a fully completed run
}

// RunAll executes the actions strictly in order, one at a time. A fatal
// action error stops the walk immediately; the remaining actions are
// recorded as skipped and nothing already applied is rolled back (every
// action is safe to re-run, so the expected recovery is simply another run).
// Warnings are logged and the walk continues.
func RunAll(actions []Action, ctx *Context) Report {
	var rep Report

	for i, action := range actions {
		logger.Info("[INFO] ==> %s\n", action.Name())

		err := action.Run(ctx)
		if err == nil {
			rep.Completed = append(rep.Completed, action.Name())
			continue
		}

		if IsWarning(err) {
			logger.Warn("[WARN] %s: %v\n", action.Name(), err)
			rep.Warnings++
			rep.Completed = append(rep.Completed, action.Name())
			continue
		}

		logger.Error("[ERROR] %s: %v\n", action.Name(), err)
		rep.Failed = action.Name()
		rep.Err = err
		for _, skipped := range actions[i+1:] {
			rep.Skipped = append(rep.Skipped, skipped.Name())
		}
		break
	}

	return rep
}
