package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat is RFC 3339 with second precision.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
