// Package logger is the central log for the application. Log entries are
// kept in memory and can be echoed to an io.Writer as they are added.
//
// Every call to Log() or Logf() takes a Permission. Entries are only added if
// the permission allows it. A nil Permission never allows logging, which
// means a component can hold a Permission field and stay quiet until one is
// assigned. Use Allow when logging should always happen.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
package logger
