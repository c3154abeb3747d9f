package domain

// Fixture is the pair of names a generated test file is built from
type Fixture struct {
	ClassName string // Class under test, e.g. "Parser"
	TestName  string // First test method, without the "test" prefix
}

// NewFixture builds a Fixture from positional arguments.
// Arguments past the second are ignored.
func NewFixture(args []string) (Fixture, error) {
	if len(args) < 2 || args[0] == "" || args[1] == "" {
		return Fixture{}, ErrMissingArguments
	}
	return Fixture{ClassName: args[0], TestName: args[1]}, nil
}
