package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mna-assessment-service/internal/pkg/constvars"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateExportObjectName names an archived export, e.g.
// exports/mna-sf/mna-assessment-report_20240305_150405.csv.
func GenerateExportObjectName(questionnaire string, now time.Time) string {
	if questionnaire == "" {
		questionnaire = constvars.ExportAllQuestionnaire
	}
	return fmt.Sprintf(constvars.ExportObjectNameFormat, questionnaire, now.Format(constvars.ExportObjectTimeLayout))
}
