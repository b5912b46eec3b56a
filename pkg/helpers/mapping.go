package helpers

import (
	"fmt"

	"github.com/oksasatya/recetario-api/pkg/mailer"
)

// EnsureRecipientAndEmail fills the template's Email field from the job
// recipient when the producer left it empty.
func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
}
