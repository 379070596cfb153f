// Package exitcode defines named exit codes for the dockergen CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

const (
	Success     = 0   // Every pending item succeeded
	Error       = 1   // Invalid args, unreadable input, misconfiguration
	ItemsFailed = 2   // Run finished but at least one item was recorded as failed
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case ItemsFailed:
		return "ItemsFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
