package worker

import (
	"context"
	"encoding/json"

	"github.com/miguelamaral254/api-cognivox-test/internal/infra"

	"github.com/rs/zerolog/log"
)

// CredenciaisEmailPayload is the job envelope for access-data emails sent
// after an actor is created.
type CredenciaisEmailPayload struct {
	Para      string `json:"para"`
	Assunto   string `json:"assunto"`
	CorpoHTML string `json:"corpo_html"`
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the HTML email described by the payload.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload CredenciaisEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.Para == "" {
		log.Warn().Msg("email_worker: empty recipient, skipping")
		return
	}

	if err := w.mailer.SendHTML(payload.Para, payload.Assunto, payload.CorpoHTML); err != nil {
		log.Error().Err(err).Str("to", payload.Para).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.Para).Msg("email_worker: email sent")
}
