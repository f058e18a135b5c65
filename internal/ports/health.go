package ports

import "context"

// HealthChecker is a dependency whose reachability gates readiness: the CMS,
// the legacy asset store and the mock store directory.
type HealthChecker interface {
	// Name identifies the component in readiness output ("cms",
	// "legacy-assets", "mockstore").
	Name() string

	// HealthCheck returns nil when the component is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness endpoint and
// for the post-ingestion check of the fetch command.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the outcome by name. A nil
	// error marks a healthy component.
	CheckAll(ctx context.Context) map[string]error
}
