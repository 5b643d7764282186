// Package constants defines shared domain-level constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// PushProviderOneSignal selects the OneSignal REST gateway.
	PushProviderOneSignal = "onesignal"
	// PushProviderFCM selects the Firebase Cloud Messaging gateway.
	PushProviderFCM = "fcm"

	// AlertTypeSOS tags outbound alert notifications and inbound click events.
	AlertTypeSOS = "sos"
	// AlertTypeSOSCancelled tags cancellation notices.
	AlertTypeSOSCancelled = "sos_cancelled"
)
