package appconf

// Environment describes the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment converts an -env flag value into an Environment.
// Unrecognized values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the application: the
// network port the server listens on, the operating environment, the set
// of valid API keys, and the per-key rate limit. These are read from
// command-line flags (optionally seeded from a .env file) at startup.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
}
