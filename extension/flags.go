// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-colour" -> FlagNoColour).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDryRun   = "dry-run"   // Report without changing anything
	FlagFailed   = "failed"    // Only failed operations
	FlagLine     = "line"      // Print the joined command line
	FlagLocal    = "local"     // Use local scope
	FlagLong     = "long"      // Long format with skeletons
	FlagNoColour = "no-colour" // Disable ANSI colour
	FlagPreview  = "preview"   // Show skeleton vs filled diff
	FlagQuiet    = "quiet"     // Exit status only
	FlagRaw      = "raw"       // Raw output without formatting
	FlagStdin    = "stdin"     // Read name=value pairs from stdin

	// Value flags

	FlagLimit     = "limit"      // Maximum number of results
	FlagOlderThan = "older-than" // Duration filter (e.g., 7d, 4w, 3m)
	FlagTemplate  = "template"   // Template name filter
)
