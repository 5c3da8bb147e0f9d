package diag

// WithProgram replaces the executed program so tests can exercise failure paths.
func WithProgram(name string, args ...string) Option {
	return func(r *Runner) {
		r.name = name
		r.args = args
	}
}

// TimedOut exposes timedOut to tests.
var TimedOut = timedOut
