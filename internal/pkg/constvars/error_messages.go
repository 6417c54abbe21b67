package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"required_without": "is required when %s is not set",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"subject_gender":   "must be either 'male' or 'female'",
	"date_of_birth":    "must be a date in YYYY-MM-DD format",
	"not_future_date":  "must not be in the future",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"required_without": true,
	"oneof":            true,
	"gt":               true,
	"gte":              true,
	"lte":              true,
	"max":              true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidAnswers                = "some answers are not valid for the questionnaire: %s"
	ErrClientStoreUnavailable              = "assessment storage is temporarily unavailable, please try again later"
	ErrClientNoAssessmentsToExport         = "no assessments found to export"
	ErrClientDuplicateSubmission           = "this assessment has already been submitted"
	ErrClientDuplicateSubmissionOf         = "this assessment has already been submitted as %s"
	ErrClientQuestionnaireNotFound         = "questionnaire %s does not exist"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "method is not allowed on this resource"
	ErrClientArchiveUnavailable            = "archived exports are not available on this server"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidAnswers        = "answers rejected by questionnaire %s"
	ErrDevEmptyDataset          = "export requested on an empty dataset"
	ErrDevDuplicateSubmission   = "idempotency key %s already used"
	ErrDevQuestionnaireNotFound = "questionnaire %s is not registered"
	ErrDevBuildExport           = "failed to build CSV export"
	ErrDevRequestBodyTooLarge   = "request body exceeds %d bytes"
	ErrDevPanicRecovered        = "panic recovered: %v"
	ErrDevLoadLocation          = "cannot load time location %s"
	ErrDevArchiveUnavailable    = "object storage is disabled"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStoreUnavailable         = "database is unreachable"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerNotFound         = "route not found"
	ErrDevServerMethodNotAllowed = "method not allowed"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
