// Package constants collects string constants shared between layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Request headers carrying device metadata.
const (
	HeaderDeviceID   = "x-device-id"
	HeaderDeviceName = "x-device"
)

// Mail event kinds.
const (
	MailKindOTP = "otp"
)
