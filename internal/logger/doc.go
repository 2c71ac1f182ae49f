// Package logger wraps zap for the release tooling:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Commands attach a named logger to the context once and every layer below
// logs through that context.
package logger
