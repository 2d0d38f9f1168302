// Package errors provides structured error types for better observability
// and programmatic error handling across the briefing collectors.
//
// Collectors signal a missing external tool with ErrCodeUnavailable, which the
// aggregation engine reports as an informational note instead of a failure:
//
//	if _, err := runner.LookPath("kubectl"); err != nil {
//	    return nil, errors.New(errors.ErrCodeUnavailable, "kubectl not installed, skipping Kubernetes")
//	}
//
// Failures carry context for logs:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "git timed out",
//	    ctx.Err(),
//	    map[string]any{
//	        "command": "git status --porcelain",
//	        "dir":     repoPath,
//	    },
//	)
package errors
