// Package logtail reads the tail of the application's log file for the
// in-app log view.
//
// Read keeps a ring buffer of the last N lines, so memory stays O(N) however
// large the file grows. A missing file yields no lines rather than an error;
// the log file is only created once logging starts.
//
// Parse understands the JSON lines zerolog writes (time, level, message,
// error, then any other fields in key order). Lines that are not JSON, such
// as a panic trace appended by the runtime, are kept as plain messages.
//
//	entries, err := logtail.Tail(cfg.LogPath, 400)
//	for _, e := range entries {
//		fmt.Println(e.String())
//	}
package logtail
