package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-notes-api/pkg/mailer"
)

func TestEnsureRecipientAndEmail(t *testing.T) {
	job := mailer.EmailJob{To: "a@b.c"}
	EnsureRecipientAndEmail(&job)
	assert.Equal(t, "a@b.c", job.Data["Email"])
	assert.Equal(t, "a@b.c", job.Data["RecipientEmail"])

	job = mailer.EmailJob{To: "a@b.c", Data: map[string]any{"Email": "other@b.c"}}
	EnsureRecipientAndEmail(&job)
	assert.Equal(t, "other@b.c", job.Data["Email"])
}

func TestNormalizeTemplate(t *testing.T) {
	job := mailer.EmailJob{Template: " Welcome "}
	NormalizeTemplate(&job)
	assert.Equal(t, "welcome", job.Template)
	assert.Equal(t, "welcome", job.Data["Type"])

	raw := mailer.EmailJob{Subject: "x"}
	NormalizeTemplate(&raw)
	assert.Nil(t, raw.Data)
}
