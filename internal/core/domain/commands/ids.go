package commands

// Stable handler identifiers. Stored in the wait and replay records, so they
// must not change between releases while such records may be alive.
const (
	HelpID  = "help"
	AskID   = "ask"
	ImageID = "image"
	RollID  = "roll"
	PlaceID = "place"
	PurgeID = "purge"
)
