package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Assessment messages
	AssessmentSubmittedSuccessMessage      = "assessment saved successfully"
	AssessmentListSuccessMessage           = "get assessments successfully"
	AssessmentReportSuccessMessage         = "get assessment report successfully"
	AssessmentExportArchivedSuccessMessage = "assessment export archived successfully"

	// Questionnaire messages
	QuestionnaireListSuccessMessage  = "get questionnaires successfully"
	QuestionnaireGetSuccessMessage   = "get questionnaire successfully"
	QuestionnaireScoreSuccessMessage = "answers scored successfully"

	HealthCheckSuccessMessage = "service is healthy"
)
