package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	DBPath  string
	Verbose bool

	// Translation flags
	From  string
	To    string
	Speak bool

	// Speech flags
	Lang  string
	Voice string
}

// NewFlags creates a new Flags instance with default values. Language
// defaults are left empty here so the stored settings can fill them
// in at run time.
func NewFlags() *Flags {
	return &Flags{}
}
