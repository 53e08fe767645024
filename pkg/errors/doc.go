// Package errors provides structured error types for programmatic error
// handling across unitctl.
//
// Every failure surfaced by the systemd manager client is a
// *StructuredError whose Code tells the caller which part of the taxonomy
// it belongs to (transport, daemon-reported, or decode) and whose Cause is
// the diagnostic the bus or the daemon supplied.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "error enabling foo.service",
//	    cause,
//	    map[string]any{
//	        "unit":       "foo.service",
//	        "dbus_error": "org.freedesktop.systemd1.NoSuchUnit",
//	    },
//	)
//
//	if errors.Is(err, errors.ErrCodeTimeout) {
//	    // retry policy belongs to the caller
//	}
package errors
