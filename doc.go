// Package voicenotes provides a Go client SDK for the Voicenotes
// transcription API: typed access to voicenotes, transcriptions, webhooks,
// API keys, and the tenant account, with automatic retry of transient
// failures, a typed error taxonomy, delegated JWT issuance, and offline
// webhook signature verification.
//
// Basic usage:
//
//	client, err := voicenotes.New("sk_live_...", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	note, err := client.Voicenotes().Item("vn_123").Get(ctx)
//	if errors.Is(err, voicenotes.ErrVoicenoteNotFound) {
//	    // handle missing voicenote
//	}
//
// Listing supports explicit pages or lazy iteration:
//
//	it := client.Voicenotes().Iterate(ctx, &voicenotes.VoicenoteListParams{
//	    Status: voicenotes.VoicenoteStatusCompleted,
//	})
//	for it.Next() {
//	    fmt.Println(it.Voicenote().Title)
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Transient failures (408, 429, and 5xx by default) are retried with
// exponential backoff before an error is returned. Retries apply to all
// methods, including POST: the API has no idempotency keys, so a retried
// create can duplicate a resource if the first attempt succeeded
// server-side. Set WithMaxRetries(0) where that matters.
//
// Inbound webhook deliveries are verified offline:
//
//	v, _ := voicenotes.NewWebhookValidator(webhook.Secret)
//	ok := v.Validate(body, r.Header.Get("X-Voicenotes-Signature"),
//	    voicenotes.WithSignatureTimestamp(r.Header.Get("X-Voicenotes-Timestamp")),
//	    voicenotes.WithSignatureDeliveryID(r.Header.Get("X-Voicenotes-Delivery")))
package voicenotes
