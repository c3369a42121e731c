package build

var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
	ProjectURL   = "https://github.com/bornholm/corpus-asana"
)
