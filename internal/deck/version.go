package deck

// Version constants for the document model and the compiler.
const (
	// SchemaVersion is the document schema version.
	SchemaVersion = "1"

	// CompilerVersion is the deckc version stamped into produced packages.
	CompilerVersion = "0.1.0"
)
