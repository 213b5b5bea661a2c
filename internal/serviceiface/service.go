package serviceiface

// Service is the unit the app manager starts and stops. Start must not
// block; long-running work goes into the service's own goroutines.
type Service interface {
	Name() string
	Start() error
	Stop() error
}
