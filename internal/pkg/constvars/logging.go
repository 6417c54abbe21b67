package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingQuestionnaireKey  = "questionnaire"
	LoggingAssessmentIDKey   = "assessment_id"
	LoggingTotalScoreKey     = "total_score"
	LoggingStatusKey         = "status"
	LoggingCountKey          = "count"
	LoggingInvalidAnswersKey = "invalid_answers"
	LoggingObjectNameKey     = "object_name"
	LoggingEventKey          = "event"
	LoggingResponseLengthKey = "response_length"
	LoggingRedisKey          = "redis_key"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingRowsKey           = "rows"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
)
