// Package hosted implements the textgen.Client interface against hosted
// text-generation model endpoints speaking the raw JSON inference protocol
// (request {"inputs": ..., "parameters": ...}, response carrying
// "generated_text").
//
// The client owns the full degradation chain: exponential backoff on rate
// limiting, retry on transport errors, and a one-way fallback from the
// primary model endpoint to the backup.
package hosted
