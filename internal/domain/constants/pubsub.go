package constants

// Pub/Sub providers accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeProductVariantsChanged = "product.variants.changed"
)
