// Package contact implements the contact-form relay: POST /send-email takes
// {"name", "email", "message"}, checks it, renders it into a fixed HTML
// notification and sends it to one administrator address.
//
// The pipeline is linear and keeps no state between requests:
//
//	ParseSubmission -> Renderer.Render -> Dispatcher.Dispatch -> JSON response
//
// Responses:
//
//	200 {"status":"success","message":"Email sent successfully"}
//	400 {"detail":"Invalid JSON body."}
//	422 {"detail":[{"field":"email","message":"value is not a valid email address","code":"invalid_email"}]}
//	500 {"detail":"Failed to send email."}
//
// Submitted text is HTML-escaped by default. FormatRaw reproduces verbatim
// interpolation and should only be used when the admin mailbox is trusted to
// render hostile markup safely.
package contact
