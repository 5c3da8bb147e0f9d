package schema

// Output keys of the normalized configuration tree. Issue paths use the same
// keys so that an issue can be routed back to the input it came from.
const (
	KeyLog             = "log"
	KeyDisabled        = "disabled"
	KeyLevel           = "level"
	KeyType            = "type"
	KeyLottery         = "lottery"
	KeyConditions      = "conditions"
	KeyCountdownRange  = "countdown_range"
	KeyMaxViewers      = "max_viewers"
	KeyMinProbability  = "min_probability"
	KeyFanClub         = "fan_club"
	KeySwitchThreshold = "switch_threshold"
	KeyPostStay        = "post_stay"
	KeyGroups          = "groups"
	KeyID              = "id"
	KeyInherit         = "inherit"
	KeyThreads         = "threads"
	KeyConnection      = "connection"
	KeyURL             = "url"
)
