package logger

// Environment names the deployment environment a logger is configured for.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps an environment name or its short alias to an
// Environment. Unknown values fall back to Development.
func ParseEnvironment(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
