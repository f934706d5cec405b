// Package sanitizer provides input normalization for text handed over by the
// chat layer before it reaches the reservation core.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully, typically by returning
// empty strings or empty maps rather than errors.
//
// Normalization includes:
//   - Text: Unicode NFC, collapse whitespace runs, trim leading/trailing spaces
//   - Phone numbers: Convert to E.164 format (+[country][number]), dropping the
//     "whatsapp:" channel prefix added by messaging providers
//   - Summaries: split "Key: value" lines produced by the assistant into a map
package sanitizer
