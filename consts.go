package tracelog

const emptyString = ""

const (
	errMsgNilConfig     = "service config is nil"
	errMsgNilService    = "logging service is nil"
	errMsgNilSpec       = "contract spec is nil"
	errMsgConfigInvalid = "service configuration is invalid"
	errMsgNoChannels    = "no logging channels enabled"
)

// fieldLoggerName is the structured field carrying the owner name bound to
// a dispatcher, attached by the concrete sinks to every record.
const fieldLoggerName = "logger"
