package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MNA_SVC_"
)

const (
	ResourceAssessments    = "assessments"
	ResourceQuestionnaires = "questionnaires"
)

const (
	AnonymousSubjectName = "匿名"
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderUnknown        = "unknown"

	DateOfBirthLayout = "2006-01-02"
)

const (
	ExportFileName         = "mna-assessment-report.csv"
	ExportObjectNameFormat = "exports/%s/mna-assessment-report_%s.csv"
	ExportObjectTimeLayout = "20060102_150405"
	ExportAllQuestionnaire = "all"
)

const (
	EventAssessmentSubmitted = "assessment.submitted"
	IdempotencyKeyPrefix     = "assessment:idempotency:"
)
