package model

// Environment names the deployment the process runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether internal error details must stay hidden from clients.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}

// IsDevelopment reports whether development-only relaxations apply.
func (e Environment) IsDevelopment() bool {
	return e == EnvironmentDevelopment
}
