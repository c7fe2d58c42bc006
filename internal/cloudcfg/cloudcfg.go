// Package cloudcfg mirrors the shape of a hosted-backend web configuration.
// It exists so the embedding application can keep the same wiring it would
// use against a real cloud project; none of the handles do anything.
package cloudcfg

// Config carries the identifiers a hosted backend would hand to a web
// client. All values are placeholders.
type Config struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
	MeasurementID     string
}

// Handles groups the service clients a real integration would expose.
// Every field is nil: the mock backend never talks to a cloud service.
type Handles struct {
	DB        any
	Auth      any
	Storage   any
	Analytics any
}

// Default returns the placeholder project configuration.
func Default() Config {
	return Config{
		APIKey:            "mock-api-key",
		AuthDomain:        "mock-project.firebaseapp.com",
		ProjectID:         "mock-project",
		StorageBucket:     "mock-project.appspot.com",
		MessagingSenderID: "123456789012",
		AppID:             "1:123456789012:web:mock-app-id",
		MeasurementID:     "G-MOCK-ID",
	}
}

// NilHandles returns the (intentionally empty) set of service handles.
func NilHandles() Handles {
	return Handles{}
}
