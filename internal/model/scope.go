package model

// Scope carries the caller identity through use cases.
type Scope struct {
	UserID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
