package api

// createRunRequest is the body of POST /api/runs.
type createRunRequest struct {
	// Task is the natural-language instruction for the supervisor.
	Task string `json:"task"`
	// ThreadID continues an existing conversation; empty starts a new one.
	ThreadID string `json:"thread_id,omitempty"`
}

// createTokenRequest is the body of POST /api/devices/tokens.
type createTokenRequest struct {
	DeviceID string `json:"device_id"`
}

// registerRunnerRequest is the body of POST /api/runners/register.
type registerRunnerRequest struct {
	EnrollToken  string   `json:"enroll_token"`
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// updateCapabilitiesRequest is the body of PUT /api/runners/:id/capabilities.
type updateCapabilitiesRequest struct {
	Capabilities []string `json:"capabilities"`
}
