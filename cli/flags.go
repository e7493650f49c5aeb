package cli

// Flags holds command-line flags shared by the commands.
type Flags struct {
	Filter   string
	Progress bool
	Review   bool
	Quiet    bool
	NoColor  bool
	Units    bool
}
