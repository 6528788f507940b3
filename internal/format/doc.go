// Package format renders log lines for the session logger.
//
// A line goes through two stages. The Preprocessor normalizes host path
// separators to "/" and expands emoji shortcodes such as ":warning:". The
// Dispatcher then picks a Template by exact level (ERROR and CRITICAL have
// boxed, highlighted templates) and falls back to a plain one for every
// other level.
package format
